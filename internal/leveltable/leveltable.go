// Package leveltable renders the level layout of a skip list as text tables.
package leveltable

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
)

// Format turns a key into its table cell.
type Format[K any] func(K) string

// Sprint formats keys with fmt's default verb.
func Sprint[K any](k K) string { return fmt.Sprint(k) }

// Summary writes one row per level, highest level first, with the number of
// linked nodes and their keys.
func Summary[K any](w io.Writer, levels [][]K, format Format[K]) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Level", "Nodes", "Keys"})
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoWrapText(false)
	for level := len(levels) - 1; level >= 0; level-- {
		keys := levels[level]
		cell := ""
		for i, k := range keys {
			if i > 0 {
				cell += " "
			}
			cell += format(k)
		}
		table.Append([]string{strconv.Itoa(level), strconv.Itoa(len(keys)), cell})
	}
	table.Render()
}

// Lanes writes a grid with one column per bottom-level key and one row per
// level, highest first. A cell holds the key when the node is linked on that
// level and is empty otherwise. Keys must be unique by their formatted form,
// which holds for any well-formed skip list with an injective format.
func Lanes[K any](w io.Writer, levels [][]K, format Format[K]) {
	if len(levels) == 0 {
		return
	}
	bottom := make([]string, len(levels[0]))
	column := make(map[string]int, len(levels[0]))
	for i, k := range levels[0] {
		bottom[i] = format(k)
		column[bottom[i]] = i
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader(append([]string{"L"}, bottom...))
	table.SetAlignment(tablewriter.ALIGN_CENTER)
	table.SetAutoWrapText(false)
	rows := make([][]string, 0, len(levels))
	for level := len(levels) - 1; level >= 0; level-- {
		row := make([]string, len(bottom)+1)
		row[0] = strconv.Itoa(level)
		for _, k := range levels[level] {
			if i, ok := column[format(k)]; ok {
				row[i+1] = format(k)
			}
		}
		rows = append(rows, row)
	}
	table.AppendBulk(rows)
	table.Render()
}
