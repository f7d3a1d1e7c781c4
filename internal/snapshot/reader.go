package snapshot

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/parquet-go/parquet-go"
	"github.com/sirupsen/logrus"

	"housinglake/server/internal/record"
)

// ReadRows streams every row of a snapshot file as a positional record
// tree. The file is opened and closed within the call on every path. A
// failed batch read is logged and ends that row group; rows already
// decoded are still delivered.
func ReadRows(path string, logger *logrus.Logger, fn func(record.Row)) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open snapshot %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat snapshot %s: %w", path, err)
	}

	pf, err := parquet.OpenFile(f, info.Size())
	if err != nil {
		return fmt.Errorf("failed to read snapshot %s: %w", path, err)
	}

	fields := pf.Schema().Fields()
	for _, rowGroup := range pf.RowGroups() {
		rows := rowGroup.Rows()
		buf := make([]parquet.Row, 128)
		for {
			n, err := rows.ReadRows(buf)
			for i := 0; i < n; i++ {
				fn(buildRow(fields, buf[i]))
			}
			if err != nil {
				if !errors.Is(err, io.EOF) {
					logger.WithError(err).WithField("path", path).
						Warn("Row read failed, skipping rest of row group")
				}
				break
			}
		}
		rows.Close()
	}
	return nil
}

// buildRow reassembles a flat parquet row (leaf values ordered by column
// index) into the nested positional tree the parsers address.
func buildRow(fields []parquet.Field, row parquet.Row) record.Row {
	byColumn := make(map[int][]parquet.Value, len(row))
	for _, v := range row {
		byColumn[v.Column()] = append(byColumn[v.Column()], v)
	}
	column := 0
	return buildGroup(fields, &column, byColumn)
}

func buildGroup(fields []parquet.Field, column *int, byColumn map[int][]parquet.Value) record.Row {
	out := make(record.Row, 0, len(fields))
	for _, field := range fields {
		out = append(out, buildValue(field, column, byColumn))
	}
	return out
}

func buildValue(field parquet.Field, column *int, byColumn map[int][]parquet.Value) record.Value {
	if field.Leaf() {
		values := byColumn[*column]
		*column++
		if field.Repeated() {
			return listValue(values)
		}
		if len(values) == 0 || values[0].IsNull() {
			return record.Null()
		}
		return scalarValue(values[0])
	}

	// LIST-annotated columns arrive as a group wrapping one repeated leaf;
	// collapse them to a flat list of scalars.
	if isListShaped(field) {
		values := byColumn[*column]
		*column++
		return listValue(values)
	}

	return record.Group(buildGroup(field.Fields(), column, byColumn)...)
}

// isListShaped reports whether the subtree is a single-leaf chain passing
// through a repeated node, i.e. the physical encoding of list<scalar>.
func isListShaped(field parquet.Field) bool {
	repeated := false
	cur := field
	for !cur.Leaf() {
		children := cur.Fields()
		if len(children) != 1 {
			return false
		}
		cur = children[0]
		if cur.Repeated() {
			repeated = true
		}
	}
	return repeated
}

func listValue(values []parquet.Value) record.Value {
	items := make([]record.Value, 0, len(values))
	for _, v := range values {
		if v.IsNull() {
			continue
		}
		items = append(items, scalarValue(v))
	}
	return record.List(items...)
}

func scalarValue(v parquet.Value) record.Value {
	switch v.Kind() {
	case parquet.Boolean:
		return record.Bool(v.Boolean())
	case parquet.Int32:
		return record.Int64(int64(v.Int32()))
	case parquet.Int64:
		return record.Int64(v.Int64())
	case parquet.Float:
		return record.Double(float64(v.Float()))
	case parquet.Double:
		return record.Double(v.Double())
	case parquet.ByteArray, parquet.FixedLenByteArray:
		return record.String(v.String())
	default:
		return record.Null()
	}
}
