package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestValueConstructors(t *testing.T) {
	require.True(t, Missing().IsMissing())
	require.Equal(t, Value{Kind: KindNumeric, Num: 1.5}, Num(1.5))
	require.Equal(t, Value{Kind: KindString, Str: "x"}, Str("x"))
	require.Equal(t, Value{Kind: KindNominal, Index: 2}, Nominal(2))

	when := time.Now()
	require.Equal(t, when, Date(when).Time)

	rel := Relational(Row{Num(1)})
	require.Equal(t, KindRelational, rel.Kind)
	require.Len(t, rel.Rows, 1)
}

func TestValueMatches(t *testing.T) {
	num := NumericAttribute("n")
	nom := NominalAttribute("c", "a", "b")
	rel := RelationalAttribute("bag", NumericAttribute("x"))

	t.Run("MissingMatchesEveryType", func(t *testing.T) {
		v := Missing()
		for _, attr := range []Attribute{num, nom, rel, StringAttribute("s"), DateAttribute("d", "")} {
			require.True(t, v.Matches(&attr), "type %s", attr.Type)
		}
	})

	t.Run("KindMustMatchType", func(t *testing.T) {
		v := Num(1)
		require.True(t, v.Matches(&num))
		require.False(t, v.Matches(&nom))

		s := Str("x")
		require.False(t, s.Matches(&num))
	})

	t.Run("NominalIndexBounds", func(t *testing.T) {
		in := Nominal(1)
		out := Nominal(2)
		neg := Nominal(-1)
		require.True(t, in.Matches(&nom))
		require.False(t, out.Matches(&nom))
		require.False(t, neg.Matches(&nom))
	})

	t.Run("RelationalRecurses", func(t *testing.T) {
		good := Relational(Row{Num(1)})
		bad := Relational(Row{Str("not numeric")})
		short := Relational(Row{})
		require.True(t, good.Matches(&rel))
		require.False(t, bad.Matches(&rel))
		require.False(t, short.Matches(&rel))
	})
}

func TestRowMatches(t *testing.T) {
	attrs := []Attribute{NumericAttribute("n"), StringAttribute("s")}

	require.True(t, Row{Num(1), Str("x")}.Matches(attrs))
	require.True(t, Row{Missing(), Missing()}.Matches(attrs))
	require.False(t, Row{Num(1)}.Matches(attrs))
	require.False(t, Row{Str("x"), Num(1)}.Matches(attrs))
}
