// Copyright (c) Qualcomm Technologies, Inc. and/or its subsidiaries.
// SPDX-License-Identifier: BSD-3-Clause-Clear

package subcommands

import (
	"fmt"
	"io"
	"os"
	"strings"
)

type TableWriter struct {
	out     io.Writer
	headers []string
	rows    [][]string
}

func NewTableWriter(headers []string) *TableWriter {
	return &TableWriter{
		out:     os.Stdout,
		headers: headers,
		rows:    make([][]string, 0),
	}
}

func (t *TableWriter) SetOutput(out io.Writer) {
	t.out = out
}

func (t *TableWriter) AddRow(columns ...any) {
	strColumns := make([]string, len(columns))
	for i, col := range columns {
		strColumns[i] = fmt.Sprintf("%v", col)
	}
	t.rows = append(t.rows, strColumns)
}

func (t *TableWriter) Render() {
	if len(t.headers) == 0 {
		return
	}

	colWidths := make([]int, len(t.headers))
	for i, header := range t.headers {
		colWidths[i] = len(header)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if i >= len(colWidths) {
				break
			}
			if len(cell) > colWidths[i] {
				colWidths[i] = len(cell)
			}
		}
	}

	for i, header := range t.headers {
		fmt.Fprint(t.out, header)
		if i < len(t.headers)-1 {
			fmt.Fprint(t.out, strings.Repeat(" ", colWidths[i]-len(header)+2))
		}
	}
	fmt.Fprintln(t.out)

	for _, columns := range t.rows {
		for i := range t.headers {
			var content string
			if i < len(columns) {
				content = columns[i]
			}
			fmt.Fprint(t.out, content)
			if i < len(t.headers)-1 {
				fmt.Fprint(t.out, strings.Repeat(" ", colWidths[i]-len(content)+2))
			}
		}
		fmt.Fprintln(t.out)
	}
}
