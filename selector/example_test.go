// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package selector_test

import (
	"fmt"
	"strings"

	"cogentcore.org/labdata/dataset"
	"cogentcore.org/labdata/loader"
	"cogentcore.org/labdata/selector"
	"cogentcore.org/labdata/transform"
)

// Example loads a two-run grouped file, selects the first run and derives
// the vector norm of its columns.
func Example() {
	const data = `Run1,Hz,ohm,Run2,Hz,ohm
-,1,3,-,1,4
-,2,0,-,2,2
`
	ld := loader.New()
	ld.ColumnsPerGroup = 3
	ds, err := ld.Read(strings.NewReader(data), dataset.Comma)
	if err != nil {
		fmt.Println(err)
		return
	}

	sl := selector.New(ds)
	if err := sl.Select("groups", []int{0}); err != nil {
		fmt.Println(err)
		return
	}
	res := sl.Dataset()
	if _, err := transform.New(res).Norm(); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(res.Names)
	fmt.Println(res.Units)
	// Output:
	// [Run1 Run1 Norm_of_Run1]
	// [Hz ohm unitless]
}
