package remap

import (
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"column-mover/internal/mapping"
	"column-mover/internal/transform"
)

var fixedDay = time.Date(2024, time.March, 5, 12, 0, 0, 0, time.UTC)

func newTransformer(t *testing.T, tbl *mapping.Table) *Transformer {
	t.Helper()

	tr, err := New(tbl, transform.Builtins(clockwork.NewFakeClockAt(fixedDay)))
	require.NoError(t, err)

	return tr
}

func gasRow() InputRow {
	return InputRow{
		"POD":               "8018590365500012345678",
		"Taryfa":            "W_3.6",
		"NrGazomierza":      "GZ-0042",
		"DataOdczytuPoprz":  "01.01.2024",
		"DataOdczytu":       "31.01.2024",
		"WskazanieLicznika": "1500",
		"ZuzycieM3":         "100",
		"WspKonwersji":      "11,2",
		"ZuzycieKWH":        "1120",
		"Ignored":           "zzz",
	}
}

func TestTransform_DefaultTable(t *testing.T) {
	tr := newTransformer(t, mapping.Default())

	out, err := tr.Transform(gasRow())
	require.NoError(t, err)

	assert.Len(t, out, tr.Width())
	assert.Equal(t, OutputRow{
		"8018590365500012345678",
		"Kowalski Jan",
		"Bajkowa 1, 75-555 Bajka",
		"W3.6",
		"ORCS070002",
		"GAZOMIERZ",
		"GZ-0042",
		"RZEC",
		"01.01.2024",
		"31.01.2024",
		"1400,0",
		"1500",
		"100",
		"11,2",
		"1120",
		"05.03.2024",
		"ORCS070002",
	}, out)
	assert.Equal(t, mapping.Default().Headers(), tr.Headers())
}

func TestTransform_IntegerAndISOVariant(t *testing.T) {
	tbl := mapping.DefaultFor(mapping.Variant{IntegerReadings: true, ISODates: true})
	tr := newTransformer(t, tbl)

	out, err := tr.Transform(gasRow())
	require.NoError(t, err)

	headers := tr.Headers()
	cell := func(name string) string {
		for i, h := range headers {
			if h == name {
				return out[i]
			}
		}

		t.Fatalf("no column %q", name)

		return ""
	}

	assert.Equal(t, "1400", cell("Wskazanie na początek"))
	assert.Equal(t, "2024-01-01", cell("Data początku zużycia"))
	assert.Equal(t, "2024-01-31", cell("Data końca zużycia"))
}

func TestTransform_LiteralIgnoresInput(t *testing.T) {
	tr := newTransformer(t, &mapping.Table{Columns: []mapping.ColumnSpec{
		mapping.Literal("Rodzaj odczytu", "RZEC"),
	}})

	for _, row := range []InputRow{{}, {"Rodzaj odczytu": "OTHER"}, gasRow()} {
		out, err := tr.Transform(row)
		require.NoError(t, err)
		assert.Equal(t, OutputRow{"RZEC"}, out)
	}
}

func TestTransform_StripUnderscores(t *testing.T) {
	tr := newTransformer(t, &mapping.Table{Columns: []mapping.ColumnSpec{
		mapping.Field("Grupa", "Taryfa").WithTransform(transform.StripUnderscoresName),
	}})

	out, err := tr.Transform(InputRow{"Taryfa": "G_11"})
	require.NoError(t, err)
	assert.Equal(t, OutputRow{"G11"}, out)
}

func TestTransform_MissingField(t *testing.T) {
	tr := newTransformer(t, mapping.Default())

	row := gasRow()
	delete(row, "ZuzycieM3")

	_, err := tr.Transform(row)

	var missing *MissingFieldError
	require.True(t, errors.As(err, &missing), "got %v", err)
	assert.Equal(t, "Wskazanie na początek", missing.Column)
	assert.Equal(t, "ZuzycieM3", missing.Field)
}

func TestTransform_TransformError(t *testing.T) {
	tr := newTransformer(t, mapping.Default())

	row := gasRow()
	row["WskazanieLicznika"] = "n/a"

	_, err := tr.Transform(row)

	var te *TransformError
	require.True(t, errors.As(err, &te), "got %v", err)
	assert.Equal(t, "Wskazanie na początek", te.Column)
	assert.Equal(t, transform.SubtractDecimalName, te.Transform)
	assert.Contains(t, err.Error(), `parse "n/a" as number`)

	ce, ok := AsCellError(err)
	require.True(t, ok)
	assert.Equal(t, "transform_failed", ce.Code())
	assert.Equal(t, "Wskazanie na początek", ce.OutputColumn())
}

func TestTransform_TypeCoercionError(t *testing.T) {
	tr := newTransformer(t, &mapping.Table{Columns: []mapping.ColumnSpec{
		mapping.Field("Zużycie", "ZuzycieM3").WithType(mapping.CoerceInteger),
	}})

	out, err := tr.Transform(InputRow{"ZuzycieM3": "100"})
	require.NoError(t, err)
	assert.Equal(t, OutputRow{"100"}, out)

	_, err = tr.Transform(InputRow{"ZuzycieM3": "sto"})

	var ce *TypeCoercionError
	require.True(t, errors.As(err, &ce), "got %v", err)
	assert.Equal(t, mapping.CoerceInteger, ce.Type)
	assert.Equal(t, "type_coercion", ce.Code())
}

func TestTransform_NullCell(t *testing.T) {
	tr := newTransformer(t, mapping.Default())

	row := gasRow()
	row["NrGazomierza"] = ""

	_, err := tr.Transform(row)

	var nc *NullCellError
	require.True(t, errors.As(err, &nc), "got %v", err)
	assert.Equal(t, "Numer fabryczny", nc.Column)
	assert.Equal(t, `column "Numer fabryczny": value is empty`, err.Error())
}

func TestTransform_NullAfterTransform(t *testing.T) {
	tr := newTransformer(t, &mapping.Table{Columns: []mapping.ColumnSpec{
		mapping.Field("Grupa", "Taryfa").WithTransform(transform.StripUnderscoresName),
	}})

	_, err := tr.Transform(InputRow{"Taryfa": "__"})

	var nc *NullCellError
	require.True(t, errors.As(err, &nc))
}

func TestTransform_StopsAtFirstFailure(t *testing.T) {
	calls := 0
	reg := transform.NewRegistry()
	reg.MustRegister(transform.Def{Name: "count", Arity: 1, Func: func(args ...string) (string, error) {
		calls++
		return args[0], nil
	}})

	tbl := &mapping.Table{Columns: []mapping.ColumnSpec{
		mapping.Field("A", "a").WithTransform("count"),
		mapping.Field("B", "missing"),
		mapping.Field("C", "c").WithTransform("count"),
	}}

	tr, err := New(tbl, reg)
	require.NoError(t, err)

	_, err = tr.Transform(InputRow{"a": "1", "c": "3"})
	require.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestNew_InvalidTable(t *testing.T) {
	_, err := New(&mapping.Table{Columns: []mapping.ColumnSpec{
		mapping.Field("A", "a").WithTransform("nope"),
	}}, transform.NewRegistry())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid mapping table")
	assert.Contains(t, err.Error(), `unknown transform "nope"`)
}

func TestTransformer_Sources(t *testing.T) {
	tr := newTransformer(t, &mapping.Table{Columns: []mapping.ColumnSpec{
		mapping.Literal("A", "x"),
		mapping.Fields("B", "WskazanieLicznika", "ZuzycieM3").WithTransform(transform.SubtractIntegerName),
		mapping.Field("C", "ZuzycieM3"),
	}})

	assert.Equal(t, []string{"WskazanieLicznika", "ZuzycieM3"}, tr.Sources())
}
