package arff

import (
	"bytes"
	"testing"

	"github.com/arloliu/arff/errs"
	"github.com/arloliu/arff/format"
	"github.com/stretchr/testify/require"
)

func newTestWriter(t *testing.T, opts ...Option) (*Writer, *bytes.Buffer) {
	t.Helper()

	var buf bytes.Buffer
	w, err := NewWriter(&buf, opts...)
	require.NoError(t, err)

	return w, &buf
}

func TestWriter(t *testing.T) {
	t.Run("IrisExample", func(t *testing.T) {
		w, buf := newTestWriter(t)

		require.NoError(t, w.WriteRelation("iris"))
		require.NoError(t, w.WriteAttribute(format.NumericAttribute("sepallength")))
		require.NoError(t, w.WriteAttribute(format.NominalAttribute("class", "a", "b")))
		require.NoError(t, w.WriteInstance(format.Instance{
			Row: format.Row{format.Num(5.1), format.Nominal(0)},
		}))
		require.NoError(t, w.Flush())

		want := "@relation iris\n" +
			"@attribute sepallength numeric\n" +
			"@attribute class {a,b}\n" +
			"@data\n" +
			"5.1,a\n"
		require.Equal(t, want, buf.String())
	})

	t.Run("WriteHeaderConvenience", func(t *testing.T) {
		w, buf := newTestWriter(t)

		header := &format.Header{
			Relation:   "r",
			Attributes: []format.Attribute{format.NumericAttribute("a1")},
		}
		require.NoError(t, w.WriteHeader(header))
		require.NoError(t, w.Flush())
		require.Equal(t, "@relation r\n@attribute a1 numeric\n", buf.String())
	})

	t.Run("SparseAndWeight", func(t *testing.T) {
		w, buf := newTestWriter(t)

		require.NoError(t, w.WriteRelation("r"))
		require.NoError(t, w.WriteAttribute(format.NumericAttribute("a")))
		require.NoError(t, w.WriteAttribute(format.NominalAttribute("b", "x", "y")))
		require.NoError(t, w.WriteSparseInstance(format.Instance{
			Row:       format.Row{format.Num(0), format.Nominal(1)},
			Weight:    2,
			HasWeight: true,
		}))
		require.NoError(t, w.Flush())

		require.Contains(t, buf.String(), "{1 y},{2}\n")
	})

	t.Run("CommentsAnyState", func(t *testing.T) {
		w, buf := newTestWriter(t)

		require.NoError(t, w.WriteComment("top"))
		require.NoError(t, w.WriteRelation("r"))
		require.NoError(t, w.WriteComment("line one\nline two"))
		require.NoError(t, w.WriteAttribute(format.NumericAttribute("a1")))
		require.NoError(t, w.WriteInstance(format.Instance{Row: format.Row{format.Num(1)}}))
		require.NoError(t, w.WriteComment("after data"))
		require.NoError(t, w.Flush())

		want := "% top\n" +
			"@relation r\n" +
			"% line one\n" +
			"% line two\n" +
			"@attribute a1 numeric\n" +
			"@data\n" +
			"1\n" +
			"% after data\n"
		require.Equal(t, want, buf.String())
	})

	t.Run("StateMachine", func(t *testing.T) {
		w, _ := newTestWriter(t)

		// Attribute before relation.
		err := w.WriteAttribute(format.NumericAttribute("a1"))
		require.ErrorIs(t, err, errs.ErrWrongState)

		// Instance before any attribute.
		require.NoError(t, w.WriteRelation("r"))
		err = w.WriteInstance(format.Instance{Row: format.Row{format.Num(1)}})
		require.ErrorIs(t, err, errs.ErrWrongState)

		// Second relation.
		err = w.WriteRelation("again")
		require.ErrorIs(t, err, errs.ErrWrongState)

		require.NoError(t, w.WriteAttribute(format.NumericAttribute("a1")))
		require.NoError(t, w.WriteInstance(format.Instance{Row: format.Row{format.Num(1)}}))

		// Header writes are sealed after @data.
		err = w.WriteAttribute(format.NumericAttribute("a2"))
		require.ErrorIs(t, err, errs.ErrWrongState)
		err = w.WriteRelation("r2")
		require.ErrorIs(t, err, errs.ErrWrongState)
		require.ErrorIs(t, err, errs.ErrInvalidOperation)
	})

	t.Run("NegativeWeight", func(t *testing.T) {
		w, _ := newTestWriter(t)

		require.NoError(t, w.WriteRelation("r"))
		require.NoError(t, w.WriteAttribute(format.NumericAttribute("a1")))
		err := w.WriteInstance(format.Instance{
			Row:       format.Row{format.Num(1)},
			Weight:    -1,
			HasWeight: true,
		})
		require.ErrorIs(t, err, errs.ErrNegativeWeight)
		require.ErrorIs(t, err, errs.ErrInvalidArgument)
	})

	t.Run("RowMismatch", func(t *testing.T) {
		w, _ := newTestWriter(t)

		require.NoError(t, w.WriteRelation("r"))
		require.NoError(t, w.WriteAttribute(format.NumericAttribute("a1")))
		err := w.WriteInstance(format.Instance{Row: format.Row{format.Num(1), format.Num(2)}})
		require.ErrorIs(t, err, errs.ErrRowMismatch)
	})

	t.Run("InvalidAttribute", func(t *testing.T) {
		w, _ := newTestWriter(t)

		require.NoError(t, w.WriteRelation("r"))
		err := w.WriteAttribute(format.Attribute{Name: "bad"})
		require.ErrorIs(t, err, errs.ErrInvalidArgument)

		err = w.WriteAttribute(format.RelationalAttribute("empty"))
		require.ErrorIs(t, err, errs.ErrInvalidArgument)
	})

	t.Run("ClosedFailsFast", func(t *testing.T) {
		w, _ := newTestWriter(t)
		require.NoError(t, w.Close())

		require.ErrorIs(t, w.WriteRelation("r"), errs.ErrClosed)
		require.ErrorIs(t, w.WriteComment("c"), errs.ErrClosed)
		require.ErrorIs(t, w.Flush(), errs.ErrClosed)
		require.ErrorIs(t, w.Close(), errs.ErrClosed)
	})

	t.Run("NilWriter", func(t *testing.T) {
		_, err := NewWriter(nil)
		require.ErrorIs(t, err, errs.ErrInvalidArgument)
	})
}

func TestWriterDefaultDateFormat(t *testing.T) {
	t.Run("FillsMissingPattern", func(t *testing.T) {
		w, buf := newTestWriter(t, WithDefaultDateFormat("yyyy-MM-dd"))

		require.NoError(t, w.WriteRelation("r"))
		require.NoError(t, w.WriteAttribute(format.Attribute{Name: "day", Type: format.TypeDate}))
		require.NoError(t, w.Flush())

		require.Equal(t, "@relation r\n@attribute day date yyyy-MM-dd\n", buf.String())
	})

	t.Run("ExplicitPatternWins", func(t *testing.T) {
		w, buf := newTestWriter(t, WithDefaultDateFormat("yyyy-MM-dd"))

		require.NoError(t, w.WriteRelation("r"))
		require.NoError(t, w.WriteAttribute(format.DateAttribute("day", "yyyy/MM/dd")))
		require.NoError(t, w.Flush())

		require.Equal(t, "@relation r\n@attribute day date yyyy/MM/dd\n", buf.String())
	})

	t.Run("RelationalChildrenUntouched", func(t *testing.T) {
		child := format.Attribute{Name: "when", Type: format.TypeDate}
		rel := format.RelationalAttribute("bag", child)

		w, _ := newTestWriter(t, WithDefaultDateFormat("yyyy-MM-dd"))
		require.NoError(t, w.WriteRelation("r"))
		require.NoError(t, w.WriteAttribute(rel))

		// The writer fills its own copy; the caller's tree keeps the empty
		// pattern.
		require.Empty(t, rel.Children[0].DateFormat)
	})

	t.Run("BadPatternRejected", func(t *testing.T) {
		var buf bytes.Buffer
		_, err := NewWriter(&buf, WithDefaultDateFormat("QQ"))
		require.ErrorIs(t, err, errs.ErrInvalidArgument)
	})
}
