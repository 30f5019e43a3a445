package xmlutil_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/HajajeHamid/google-feedserver/pkg/xmlutil"
)

func TestToProperties_SimpleLeaves(t *testing.T) {
	props, err := xmlutil.ToProperties("<entity><a>first</a><b>second</b><c>third</c><z></z></entity>")
	require.NoError(t, err)
	require.Len(t, props, 4)
	require.Equal(t, xmlutil.Text("first"), props["a"])
	require.Equal(t, xmlutil.Text("second"), props["b"])
	require.Equal(t, xmlutil.Text("third"), props["c"])
	require.Nil(t, props["z"])
	// The empty leaf is indistinguishable from an absent key on lookup,
	// but iteration still visits it.
	require.Contains(t, props, "z")
	require.NotContains(t, props, "y")
}

func TestToProperties_RepeatedValues(t *testing.T) {
	props, err := xmlutil.ToProperties(
		`<entity><a>first</a><b repeatable="true">second0</b><b>second1</b><b>second2</b><c>third</c></entity>`)
	require.NoError(t, err)
	require.Len(t, props, 3)
	require.Equal(t, xmlutil.Text("first"), props["a"])
	require.Equal(t, xmlutil.Text("third"), props["c"])
	require.Equal(t,
		xmlutil.Sequence{xmlutil.Text("second0"), xmlutil.Text("second1"), xmlutil.Text("second2")},
		props["b"])
}

func TestToProperties_PromotionWithoutMarker(t *testing.T) {
	// A second same-named sibling promotes to a sequence even when no
	// occurrence carries the repeatable marker.
	props, err := xmlutil.ToProperties("<entity><b>one</b><b>two</b></entity>")
	require.NoError(t, err)
	require.Equal(t, xmlutil.Sequence{xmlutil.Text("one"), xmlutil.Text("two")}, props["b"])
}

func TestToProperties_SingleMarkedOccurrence(t *testing.T) {
	props, err := xmlutil.ToProperties(`<entity><b repeatable="true">only</b></entity>`)
	require.NoError(t, err)
	require.Equal(t, xmlutil.Sequence{xmlutil.Text("only")}, props["b"])
}

func TestToProperties_NestedElement(t *testing.T) {
	props, err := xmlutil.ToProperties(
		"<entity><a>first</a><b>second</b><d><c>third</c><e>forth</e><z></z></d><z></z></entity>")
	require.NoError(t, err)
	require.Len(t, props, 4)
	require.Equal(t, xmlutil.Text("first"), props["a"])
	require.Equal(t, xmlutil.Text("second"), props["b"])
	require.Nil(t, props["z"])
	require.Equal(t, xmlutil.Map{
		"c": xmlutil.Text("third"),
		"e": xmlutil.Text("forth"),
		"z": nil,
	}, props["d"])
}

func TestToProperties_NestedElementWithRepeatedValue(t *testing.T) {
	props, err := xmlutil.ToProperties(
		`<entity><a>first</a><b>second</b><d><c>third</c><e repeatable="true">forth0</e><e>forth1</e><z></z></d><z></z></entity>`)
	require.NoError(t, err)
	require.Len(t, props, 4)
	require.Equal(t, xmlutil.Map{
		"c": xmlutil.Text("third"),
		"e": xmlutil.Sequence{xmlutil.Text("forth0"), xmlutil.Text("forth1")},
		"z": nil,
	}, props["d"])
}

func TestToProperties_RepeatedGroup(t *testing.T) {
	// A repeatable group with a single occurrence yields a one-element
	// sequence containing the nested map, not the bare map.
	props, err := xmlutil.ToProperties(
		`<entity><a>first</a><b>second</b><d repeatable="true"><b>third</b><e repeatable="true">forth0</e><e>forth1</e><z></z></d><z></z></entity>`)
	require.NoError(t, err)
	require.Len(t, props, 4)
	require.Equal(t, xmlutil.Sequence{
		xmlutil.Map{
			"b": xmlutil.Text("third"),
			"e": xmlutil.Sequence{xmlutil.Text("forth0"), xmlutil.Text("forth1")},
			"z": nil,
		},
	}, props["d"])
}

func TestToProperties_GroupKeyShadowsInnerLeaf(t *testing.T) {
	// Seen-key tracking is scoped per nesting level, so a <d> leaf inside a
	// repeated <d> group stays a plain text value.
	props, err := xmlutil.ToProperties(
		`<entity><d repeatable="true"><d>third</d><e repeatable="true">forth0</e><e>forth1</e><z></z></d></entity>`)
	require.NoError(t, err)
	groups, ok := props["d"].(xmlutil.Sequence)
	require.True(t, ok)
	require.Len(t, groups, 1)
	inner, ok := groups[0].(xmlutil.Map)
	require.True(t, ok)
	require.Equal(t, xmlutil.Text("third"), inner["d"])
	require.Nil(t, inner["z"])
	require.Equal(t, xmlutil.Sequence{xmlutil.Text("forth0"), xmlutil.Text("forth1")}, inner["e"])
}

func TestToProperties_Malformed(t *testing.T) {
	for _, input := range []string{
		"",
		"<entity",
		"<entity><a>first</entity>",
		"<entity><a>&bogus;</a></entity>",
		"plain text",
	} {
		_, err := xmlutil.ToProperties(input)
		var parseErr *xmlutil.ParseError
		require.ErrorAs(t, err, &parseErr, "input %q", input)
		require.Error(t, parseErr.Unwrap())
	}
}

func TestToXML_SortedDeterministicOutput(t *testing.T) {
	out, err := xmlutil.ToXML(xmlutil.Map{
		"c": xmlutil.Text("third"),
		"a": xmlutil.Text("first"),
		"b": xmlutil.Sequence{xmlutil.Text("second0"), xmlutil.Text("second1")},
		"z": nil,
	})
	require.NoError(t, err)
	require.Equal(t,
		`<entity><a>first</a><b repeatable="true">second0</b><b>second1</b><c>third</c><z></z></entity>`,
		out)
}

func TestToXML_EscapesText(t *testing.T) {
	out, err := xmlutil.ToXML(xmlutil.Map{"a": xmlutil.Text("1 < 2 & 3 > 2")})
	require.NoError(t, err)

	props, err := xmlutil.ToProperties(out)
	require.NoError(t, err)
	require.Equal(t, xmlutil.Text("1 < 2 & 3 > 2"), props["a"])
}

func TestToXML_NestedSequenceFails(t *testing.T) {
	_, err := xmlutil.ToXML(xmlutil.Map{
		"b": xmlutil.Sequence{xmlutil.Sequence{xmlutil.Text("x")}},
	})
	var serErr *xmlutil.SerializationError
	require.ErrorAs(t, err, &serErr)
	require.Equal(t, "b", serErr.Key)
}

func TestRoundTrip(t *testing.T) {
	documents := []string{
		"<entity><a>first</a><b>second</b><c>third</c><z></z></entity>",
		`<entity><a>first</a><b repeatable="true">second0</b><b>second1</b><b>second2</b><c>third</c></entity>`,
		"<entity><a>first</a><b>second</b><d><c>third</c><e>forth</e><z></z></d><z></z></entity>",
		`<entity><d repeatable="true"><d>third</d><e repeatable="true">forth0</e><e>forth1</e><z></z></d><z></z></entity>`,
	}
	for _, doc := range documents {
		props, err := xmlutil.ToProperties(doc)
		require.NoError(t, err)

		out, err := xmlutil.ToXML(props)
		require.NoError(t, err)

		reparsed, err := xmlutil.ToProperties(out)
		require.NoError(t, err)
		require.Equal(t, props, reparsed, "document %q", doc)
	}
}

func TestRoundTrip_SingleElementSequenceStaysSequence(t *testing.T) {
	// The marker is re-emitted on the sole occurrence, so a one-element
	// sequence does not collapse to a scalar across a round trip.
	props := xmlutil.Map{"b": xmlutil.Sequence{xmlutil.Text("only")}}

	out, err := xmlutil.ToXML(props)
	require.NoError(t, err)
	require.Equal(t, `<entity><b repeatable="true">only</b></entity>`, out)

	reparsed, err := xmlutil.ToProperties(out)
	require.NoError(t, err)
	require.Equal(t, props, reparsed)
}
