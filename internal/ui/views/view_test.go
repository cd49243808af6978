package views

import (
	"fmt"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dropdown/internal/domain"
	"dropdown/internal/ui/state"
)

func fruit() []domain.Choice {
	return []domain.Choice{
		{ID: "o1", Text: "Apple"},
		{ID: "o2", Text: "Banana"},
		{ID: "o3", Text: "Cherry", Disabled: true},
	}
}

func snapshot(list []domain.Choice, selectedID string, open bool, highlight int) state.Snapshot {
	s := state.NewSelectionState()
	s.Open = open
	s.HighlightedIndex = highlight
	return state.BuildSnapshot(list, selectedID, *s, "Fruit", "Select an option", "", "en")
}

func TestEnsureVisible(t *testing.T) {
	tests := []struct {
		name                         string
		index, offset, height, total int
		want                         int
	}{
		{"fits without scrolling", 2, 0, 5, 3, 0},
		{"already visible", 3, 2, 3, 10, 2},
		{"above viewport", 1, 4, 3, 10, 1},
		{"below viewport", 8, 0, 3, 10, 6},
		{"last item", 9, 0, 3, 10, 7},
		{"invalid index clamps", -1, 20, 3, 10, 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ensureVisible(tt.index, tt.offset, tt.height, tt.total))
		})
	}
}

func TestViewClosed(t *testing.T) {
	r := NewRenderer(30, 5)
	r.Render(snapshot(fruit(), "", false, state.None))

	out := r.View()

	assert.Contains(t, out, "Fruit")
	assert.Contains(t, out, "▾")
	assert.NotContains(t, out, "Banana")
	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), 30)
	}

	assert.Equal(t, HitTrigger, r.HitTest(3, 2).Kind)
	assert.Equal(t, HitOutside, r.HitTest(3, 0).Kind, "the label is not part of the trigger")
	assert.Equal(t, HitOutside, r.HitTest(3, 6).Kind)
	assert.Equal(t, HitOutside, r.HitTest(40, 2).Kind)
}

func TestViewShowsSelectionOnButton(t *testing.T) {
	r := NewRenderer(30, 5)
	r.Render(snapshot(fruit(), "o2", false, state.None))

	assert.Contains(t, r.View(), "Banana")
}

func TestViewOpenRecordsOptionZones(t *testing.T) {
	r := NewRenderer(30, 5)
	r.Render(snapshot(fruit(), "o1", true, 1))

	out := r.View()

	assert.Contains(t, out, "▴")
	assert.Contains(t, out, "✓ Apple")
	assert.Contains(t, out, "› Banana")
	assert.Contains(t, out, "Cherry")

	// label 0, trigger 1-3, list border 4, options from 5
	assert.Equal(t, HitList, r.HitTest(2, 4).Kind)
	for i, id := range []string{"o1", "o2", "o3"} {
		hit := r.HitTest(2, 5+i)
		require.Equal(t, HitOption, hit.Kind, "line %d", 5+i)
		assert.Equal(t, id, hit.ID)
		assert.Equal(t, i, hit.Index)
	}
	assert.Equal(t, HitList, r.HitTest(2, 8).Kind)
	assert.Equal(t, HitOutside, r.HitTest(2, 9).Kind)
}

func TestViewScrollsLongLists(t *testing.T) {
	var list []domain.Choice
	for i := 0; i < 10; i++ {
		list = append(list, domain.Choice{ID: fmt.Sprintf("c%d", i), Text: fmt.Sprintf("Choice %d", i)})
	}
	r := NewRenderer(30, 3)
	r.Render(snapshot(list, "", true, 9))

	r.ScrollIntoView(9)
	out := r.View()

	assert.Equal(t, 7, r.Offset())
	assert.Contains(t, out, "↑ 7 more")
	assert.NotContains(t, out, "↓", "no rows below")
	assert.NotContains(t, out, "Choice 6")
	assert.Contains(t, out, "Choice 9")

	hit := r.HitTest(1, 6)
	assert.Equal(t, HitOption, hit.Kind)
	assert.Equal(t, "c7", hit.ID)
}

func TestRenderClampsOffsetWhenListShrinks(t *testing.T) {
	var list []domain.Choice
	for i := 0; i < 10; i++ {
		list = append(list, domain.Choice{ID: fmt.Sprintf("c%d", i), Text: fmt.Sprintf("Choice %d", i)})
	}
	r := NewRenderer(30, 3)
	r.Render(snapshot(list, "", true, state.None))
	r.ScrollIntoView(9)
	require.Equal(t, 7, r.Offset())

	r.Render(snapshot(list[:4], "", true, state.None))

	assert.Equal(t, 1, r.Offset())
}

func TestViewShowsAnnouncement(t *testing.T) {
	r := NewRenderer(40, 5)
	snap := snapshot(fruit(), "", false, state.None)
	snap.Announcement = "Apple selected"
	r.Render(snap)

	assert.Contains(t, r.View(), "Apple selected")
}

func TestViewEmptyList(t *testing.T) {
	r := NewRenderer(30, 5)
	r.Render(snapshot(nil, "", true, state.None))

	out := r.View()

	assert.Contains(t, out, "(empty)")
	assert.Equal(t, HitList, r.HitTest(1, 5).Kind)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "Apple", truncate("Apple", 10))
	assert.Equal(t, "App…", truncate("Apple", 4))
	assert.Equal(t, "", truncate("Apple", 0))
}
