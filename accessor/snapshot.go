/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package accessor

import "dirpx.dev/assoc/apis"

// Snapshot holds the accessor definitions of one name as they were before
// an install.
type Snapshot struct {
	table  apis.MethodTable
	name   string
	reader apis.Method
	writer apis.Method
}

// Capture records the current reader and writer of name on table.
func Capture(table apis.MethodTable, name string) Snapshot {
	s := Snapshot{table: table, name: name}
	s.reader, _ = table.Lookup(ReaderName(name))
	s.writer, _ = table.Lookup(WriterName(name))
	return s
}

// Restore puts the captured definitions back. Names that were absent at
// capture time are removed.
func (s Snapshot) Restore() {
	if s.table == nil {
		return
	}
	restore(s.table, ReaderName(s.name), s.reader)
	restore(s.table, WriterName(s.name), s.writer)
}

func restore(table apis.MethodTable, method string, m apis.Method) {
	if m == nil {
		table.Remove(method)
		return
	}
	table.Define(method, m)
}
