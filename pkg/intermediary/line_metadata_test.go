package intermediary_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shkm/rubyfmt/pkg/intermediary"
)

func TestWantsSpacerForConditional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		build func(m *intermediary.LineMetadata)
		want  bool
	}{
		{
			name:  "empty line",
			build: func(_ *intermediary.LineMetadata) {},
			want:  false,
		},
		{
			name:  "end alone",
			build: func(m *intermediary.LineMetadata) { m.SetHasEnd() },
			want:  false,
		},
		{
			name:  "conditional alone",
			build: func(m *intermediary.LineMetadata) { m.SetHasConditional() },
			want:  false,
		},
		{
			name: "end with conditional",
			build: func(m *intermediary.LineMetadata) {
				m.SetHasEnd()
				m.SetHasConditional()
			},
			want: true,
		},
		{
			name: "end with do",
			build: func(m *intermediary.LineMetadata) {
				m.SetHasEnd()
				m.SetHasDoKeyword()
			},
			want: true,
		},
		{
			name: "def does not count",
			build: func(m *intermediary.LineMetadata) {
				m.SetHasEnd()
				m.SetHasDef()
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var m intermediary.LineMetadata
			tt.build(&m)
			assert.Equal(t, tt.want, m.WantsSpacerForConditional())
		})
	}
}

func TestIndentLevelIncreasesBetween(t *testing.T) {
	t.Parallel()

	observed := func(depth int) *intermediary.LineMetadata {
		var m intermediary.LineMetadata
		m.ObserveIndentLevel(depth)
		return &m
	}

	tests := []struct {
		name      string
		prev, cur *intermediary.LineMetadata
		want      bool
	}{
		{"deeper", observed(0), observed(2), true},
		{"same", observed(2), observed(2), false},
		{"shallower", observed(4), observed(2), false},
		{"prev unobserved", &intermediary.LineMetadata{}, observed(2), false},
		{"cur unobserved", observed(0), &intermediary.LineMetadata{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := intermediary.IndentLevelIncreasesBetween(tt.prev, tt.cur)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIndentLevelObservation(t *testing.T) {
	t.Parallel()

	var m intermediary.LineMetadata

	_, observed := m.IndentLevel()
	assert.False(t, observed)

	m.ObserveIndentLevel(0)
	depth, observed := m.IndentLevel()
	assert.True(t, observed, "depth zero still counts as observed")
	assert.Equal(t, 0, depth)
}

func TestBlanklineReasonString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "end_of_require_block", intermediary.ReasonEndOfRequireBlock.String())
	assert.Equal(t, "class_or_module", intermediary.ReasonClassOrModule.String())
	assert.Equal(t, "comment_after_end", intermediary.ReasonCommentAfterEnd.String())
}
