package main

import (
	"fmt"
	"io"
	"recall-game/storage"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
)

// dump prints every raw entry under prefix, index keys included.
func dump(out io.Writer, db *badger.DB, prefix string) error {
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Key", "Size", "Decoded"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	count := 0
	err := db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		for it.Seek([]byte(prefix)); it.ValidForPrefix([]byte(prefix)); it.Next() {
			item := it.Item()
			key := string(item.Key())
			val, err := item.ValueCopy(nil)
			if err != nil {
				return err
			}
			table.Append([]string{key, fmt.Sprintf("%d", len(val)), decode(key, val)})
			count++
		}
		return nil
	})
	if err != nil {
		return err
	}
	table.Render()
	fmt.Fprintln(out, color.Cyan.Sprintf("%d entries under %q", count, prefix))
	return nil
}

func decode(key string, val []byte) string {
	if strings.HasPrefix(key, "idx:") {
		return "-> " + string(val)
	}
	room, err := storage.DecodeEntry(key, val)
	if err != nil {
		return color.Red.Sprint(err.Error())
	}
	return fmt.Sprintf("%v", room.Metadata)
}
