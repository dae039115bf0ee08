package arff

import (
	"io"
	"strings"
	"testing"

	"github.com/arloliu/arff/errs"
	"github.com/arloliu/arff/format"
	"github.com/stretchr/testify/require"
)

const irisDoc = "% iris sample\n" +
	"@relation iris\n" +
	"@attribute sepallength numeric\n" +
	"@attribute class {a,b}\n" +
	"@data\n" +
	"5.1,a\n" +
	"4.9,b\n"

func newTestReader(t *testing.T, doc string, opts ...Option) *Reader {
	t.Helper()

	r, err := NewReader(strings.NewReader(doc), opts...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.Close() })

	return r
}

func TestReader(t *testing.T) {
	t.Run("HeaderThenInstances", func(t *testing.T) {
		r := newTestReader(t, irisDoc)

		header, err := r.ReadHeader()
		require.NoError(t, err)
		require.Equal(t, "iris", header.Relation)
		require.Len(t, header.Attributes, 2)

		inst, err := r.ReadInstance()
		require.NoError(t, err)
		require.Equal(t, format.Row{format.Num(5.1), format.Nominal(0)}, inst.Row)

		inst, err = r.ReadInstance()
		require.NoError(t, err)
		require.Equal(t, format.Row{format.Num(4.9), format.Nominal(1)}, inst.Row)

		_, err = r.ReadInstance()
		require.Equal(t, io.EOF, err)
	})

	t.Run("ReadAllImpliesHeader", func(t *testing.T) {
		r := newTestReader(t, irisDoc)

		instances, err := r.ReadAll()
		require.NoError(t, err)
		require.Len(t, instances, 2)
		require.NotNil(t, r.Header())
	})

	t.Run("InstanceBeforeHeader", func(t *testing.T) {
		r := newTestReader(t, irisDoc)

		_, err := r.ReadInstance()
		require.ErrorIs(t, err, errs.ErrWrongState)
		require.ErrorIs(t, err, errs.ErrInvalidOperation)
	})

	t.Run("HeaderTwice", func(t *testing.T) {
		r := newTestReader(t, irisDoc)

		_, err := r.ReadHeader()
		require.NoError(t, err)
		_, err = r.ReadHeader()
		require.ErrorIs(t, err, errs.ErrHeaderAlreadyRead)
	})

	t.Run("ClosedFailsFast", func(t *testing.T) {
		r, err := NewReader(strings.NewReader(irisDoc))
		require.NoError(t, err)
		require.NoError(t, r.Close())

		_, err = r.ReadHeader()
		require.ErrorIs(t, err, errs.ErrClosed)
		_, err = r.ReadInstance()
		require.ErrorIs(t, err, errs.ErrClosed)
		_, err = r.ReadAll()
		require.ErrorIs(t, err, errs.ErrClosed)
		require.ErrorIs(t, r.Close(), errs.ErrClosed)
	})

	t.Run("NilReader", func(t *testing.T) {
		_, err := NewReader(nil)
		require.ErrorIs(t, err, errs.ErrInvalidArgument)
	})

	t.Run("MalformedRowAborts", func(t *testing.T) {
		doc := "@relation r\n@attribute a1 numeric\n@data\nnot-a-number\n"
		r := newTestReader(t, doc)

		_, err := r.ReadAll()
		require.ErrorIs(t, err, errs.ErrBadNumber)
		require.ErrorIs(t, err, errs.ErrInvalidData)
	})

	t.Run("EmptyDataSection", func(t *testing.T) {
		r := newTestReader(t, "@relation r\n@attribute a1 numeric\n@data\n")

		instances, err := r.ReadAll()
		require.NoError(t, err)
		require.Empty(t, instances)
	})

	t.Run("WeightedInstances", func(t *testing.T) {
		doc := "@relation r\n@attribute a1 numeric\n@data\n1,{0.25}\n2\n"
		r := newTestReader(t, doc)

		instances, err := r.ReadAll()
		require.NoError(t, err)
		require.Len(t, instances, 2)
		require.True(t, instances[0].HasWeight)
		require.Equal(t, 0.25, instances[0].Weight)
		require.False(t, instances[1].HasWeight)
	})
}

func TestReaderOptions(t *testing.T) {
	t.Run("StrictWeightsRejectsNegative", func(t *testing.T) {
		doc := "@relation r\n@attribute a1 numeric\n@data\n1,{-2}\n"
		r := newTestReader(t, doc, WithStrictWeights())

		_, err := r.ReadAll()
		require.ErrorIs(t, err, errs.ErrBadWeight)
		require.ErrorIs(t, err, errs.ErrInvalidData)
	})

	t.Run("NegativeWeightPassesByDefault", func(t *testing.T) {
		doc := "@relation r\n@attribute a1 numeric\n@data\n1,{-2}\n"
		r := newTestReader(t, doc)

		instances, err := r.ReadAll()
		require.NoError(t, err)
		require.Len(t, instances, 1)
		require.Equal(t, -2.0, instances[0].Weight)
	})

	t.Run("DefaultDateFormat", func(t *testing.T) {
		doc := "@relation r\n@attribute day date\n@data\n2024-03-01\n"
		r := newTestReader(t, doc, WithDefaultDateFormat("yyyy-MM-dd"))

		header, err := r.ReadHeader()
		require.NoError(t, err)
		require.Equal(t, "yyyy-MM-dd", header.Attributes[0].DateFormat)

		inst, err := r.ReadInstance()
		require.NoError(t, err)
		require.Equal(t, 2024, inst.Row[0].Time.Year())
	})

	t.Run("ExplicitPatternWins", func(t *testing.T) {
		doc := "@relation r\n@attribute day date yyyy/MM/dd\n@data\n2024/03/01\n"
		r := newTestReader(t, doc, WithDefaultDateFormat("yyyy-MM-dd"))

		header, err := r.ReadHeader()
		require.NoError(t, err)
		require.Equal(t, "yyyy/MM/dd", header.Attributes[0].DateFormat)

		_, err = r.ReadInstance()
		require.NoError(t, err)
	})

	t.Run("BadDefaultDateFormat", func(t *testing.T) {
		_, err := NewReader(strings.NewReader(irisDoc), WithDefaultDateFormat("QQ"))
		require.ErrorIs(t, err, errs.ErrInvalidArgument)
	})
}
