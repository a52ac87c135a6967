package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSpec(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected Spec
	}{
		{name: "two keys", raw: "owner=alice,label=bug", expected: Spec{"owner": "alice", "label": "bug"}},
		{name: "last wins", raw: "owner=alice,owner=bob", expected: Spec{"owner": "bob"}},
		{name: "segment without equals", raw: "owner", expected: Spec{"owner": ""}},
		{name: "splits on first equals only", raw: "comment=a=b", expected: Spec{"comment": "a=b"}},
		{name: "unknown key kept", raw: "milestone=v1,status=success", expected: Spec{"milestone": "v1", "status": "success"}},
		{name: "keys are case sensitive", raw: "Owner=alice", expected: Spec{"Owner": "alice"}},
		{name: "empty string", raw: "", expected: Spec{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseSpec(tt.raw))
		})
	}
}

func TestSpec_Has(t *testing.T) {
	spec := ParseSpec("owner=,label=bug")
	assert.True(t, spec.Has(KeyOwner))
	assert.True(t, spec.Has(KeyLabel))
	assert.False(t, spec.Has(KeyStatus))
}

func TestSpec_String(t *testing.T) {
	assert.Equal(t, "label=bug,owner=alice", ParseSpec("owner=alice,label=bug").String())
	assert.Equal(t, "", Spec{}.String())
}
