package view

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestElement_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(sampleTree())
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"kind": "div",
		"attrs": {"class": "the-parent"},
		"children": [
			{"kind": "span", "attrs": {"class": "child-1"}, "text": "First child"},
			{"kind": "span", "attrs": {"class": "child-2"}, "text": "Second child"},
			{"kind": "span", "attrs": {"class": "child-3"}, "text": "Third child"}
		]
	}`, string(data))
}

func TestElement_UnmarshalJSON(t *testing.T) {
	data, err := json.Marshal(sampleTree())
	require.NoError(t, err)

	var got Element
	require.NoError(t, json.Unmarshal(data, &got))
	assert.True(t, Equal(sampleTree(), &got))
}

func TestElement_UnmarshalJSONErrors(t *testing.T) {
	type tc struct {
		input string
		kind  bool
	}

	tests := map[string]tc{
		"unknown kind":       {input: `{"kind":"table"}`, kind: true},
		"unknown child kind": {input: `{"kind":"div","children":[{"kind":"p"}]}`, kind: true},
		"malformed":          {input: `{"kind":`},
		"wrong type":         {input: `{"kind":1}`},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var e Element
			err := json.Unmarshal([]byte(tt.input), &e)
			require.Error(t, err)
			if tt.kind {
				assert.ErrorIs(t, err, ErrUnknownKind)
			}
		})
	}
}

func TestElement_MarshalJSONUnknownKind(t *testing.T) {
	type tc struct {
		el *Element
	}

	tests := map[string]tc{
		"root":  {el: New(Kind(42))},
		"child": {el: New(KindContainer, WithChildren(New(Kind(-1))))},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := json.Marshal(tt.el)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrUnknownKind)
		})
	}
}
