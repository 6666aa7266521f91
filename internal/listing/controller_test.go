package listing

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"internhub/internal/client"
	"internhub/internal/portal"
)

// fakeBackend pages over a fixed program set the way the server does.
type fakeBackend struct {
	programs []portal.Program
	calls    []portal.ListQuery
	err      error
}

func newFakeBackend(n int) *fakeBackend {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	b := &fakeBackend{}
	for i := 1; i <= n; i++ {
		b.programs = append(b.programs, portal.Program{
			ID:        fmt.Sprintf("p%02d", i),
			Title:     fmt.Sprintf("Program %02d", i),
			Company:   []string{"Acme", "Globex", "Initech"}[i%3],
			StartDate: base.AddDate(0, 0, -i),
			Status:    portal.ProgramOpen,
		})
	}
	return b
}

func (b *fakeBackend) fetch(_ context.Context, q portal.ListQuery) (portal.Page[portal.Program], error) {
	b.calls = append(b.calls, q)
	if b.err != nil {
		return portal.Page[portal.Program]{}, b.err
	}
	p := portal.NewPagination(q.Page, q.Limit, len(b.programs))
	start := min(p.Offset(), len(b.programs))
	end := min(start+q.Limit, len(b.programs))
	return portal.Page[portal.Program]{Items: b.programs[start:end], Pagination: p}, nil
}

func TestLoadReportsServerTotal(t *testing.T) {
	backend := newFakeBackend(25)
	c := New(backend.fetch, ProgramFields(), WithPageSize[portal.Program](10))

	require.NoError(t, c.Load(context.Background()))
	assert.Len(t, c.Records(), 10)
	assert.Equal(t, 25, c.Total())
	assert.Equal(t, 3, c.Pagination().TotalPages)
	assert.False(t, c.Loading())
	assert.NoError(t, c.Err())
}

func TestPageAndSizeChangesRefetch(t *testing.T) {
	ctx := context.Background()
	backend := newFakeBackend(25)
	c := New(backend.fetch, ProgramFields())

	require.NoError(t, c.SetPage(ctx, 3))
	assert.Len(t, c.Records(), 5)
	assert.Equal(t, "p21", c.Records()[0].ID)

	require.NoError(t, c.SetPageSize(ctx, 20))
	assert.Equal(t, 1, c.Page())
	assert.Len(t, c.Records(), 20)

	require.Len(t, backend.calls, 2)
	assert.Equal(t, portal.ListQuery{Page: 3, Limit: 10}, backend.calls[0])
	assert.Equal(t, portal.ListQuery{Page: 1, Limit: 20}, backend.calls[1])
}

func TestNextPrevStopAtBounds(t *testing.T) {
	ctx := context.Background()
	c := New(newFakeBackend(15).fetch, ProgramFields())
	require.NoError(t, c.Load(ctx))

	moved, err := c.Prev(ctx)
	require.NoError(t, err)
	assert.False(t, moved)

	moved, err = c.Next(ctx)
	require.NoError(t, err)
	assert.True(t, moved)
	assert.Equal(t, 2, c.Page())

	moved, err = c.Next(ctx)
	require.NoError(t, err)
	assert.False(t, moved)
}

func TestNextStaysPutAfterFailedLoad(t *testing.T) {
	ctx := context.Background()
	backend := newFakeBackend(15)
	c := New(backend.fetch, ProgramFields())

	moved, err := c.Next(ctx)
	require.NoError(t, err)
	assert.False(t, moved)

	backend.err = errors.New("boom")
	require.Error(t, c.Load(ctx))
	for k := 0; k < 3; k++ {
		moved, err = c.Next(ctx)
		require.NoError(t, err)
		assert.False(t, moved)
	}
	assert.Equal(t, 1, c.Page())
	assert.Len(t, backend.calls, 1)

	backend.err = nil
	require.NoError(t, c.Load(ctx))
	moved, err = c.Next(ctx)
	require.NoError(t, err)
	assert.True(t, moved)
	assert.Equal(t, 2, c.Page())
}

func TestSearchOnlyCoversLoadedPage(t *testing.T) {
	ctx := context.Background()
	backend := newFakeBackend(25)
	c := New(backend.fetch, ProgramFields())
	require.NoError(t, c.Load(ctx))

	c.SetSearch("program 2")
	visible := c.Visible()
	// Programs 20-25 live on later pages and are not found from page 1.
	assert.Empty(t, visible)
	assert.Equal(t, ScopePage, c.SearchScope())

	c.SetSearch("PROGRAM 0")
	assert.Len(t, c.Visible(), 9)

	require.NoError(t, c.SetPage(ctx, 3))
	assert.Empty(t, c.Visible())
	c.SetSearch("program 2")
	assert.Len(t, c.Visible(), 5)

	assert.Len(t, backend.calls, 2, "search must not hit the server")
	assert.Equal(t, 25, c.Total(), "search does not change the server total")
}

func TestSearchMatchesAnySearchableField(t *testing.T) {
	c := New(newFakeBackend(9).fetch, ProgramFields())
	require.NoError(t, c.Load(context.Background()))

	c.SetSearch("globex")
	for _, p := range c.Visible() {
		assert.Equal(t, "Globex", p.Company)
	}
	assert.Len(t, c.Visible(), 3)
}

func TestSortByTextAndDate(t *testing.T) {
	c := New(newFakeBackend(5).fetch, ProgramFields())
	require.NoError(t, c.Load(context.Background()))

	require.NoError(t, c.SetSort("start", Asc))
	visible := c.Visible()
	assert.Equal(t, "p05", visible[0].ID)
	assert.Equal(t, "p01", visible[4].ID)

	require.NoError(t, c.SetSort("title", Desc))
	assert.Equal(t, "p05", c.Visible()[0].ID)

	require.NoError(t, c.SetSort("company", Asc))
	visible = c.Visible()
	assert.Equal(t, "Acme", visible[0].Company)
	assert.Equal(t, "Initech", visible[4].Company)

	assert.Equal(t, "p01", c.Records()[0].ID, "sorting leaves the server order intact")

	err := c.SetSort("salary", Asc)
	assert.ErrorIs(t, err, ErrUnknownSortField)

	require.NoError(t, c.SetSort("", Asc))
	assert.Equal(t, "p01", c.Visible()[0].ID)
}

func TestLoadErrorKeepsServerMessage(t *testing.T) {
	backend := newFakeBackend(5)
	c := New(backend.fetch, ProgramFields())
	require.NoError(t, c.Load(context.Background()))

	backend.err = &client.APIError{StatusCode: 500, Message: "database unavailable"}
	err := c.Load(context.Background())
	require.Error(t, err)

	var apiErr *client.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "database unavailable", client.UserMessage(c.Err()))
	assert.Empty(t, c.Records())
	assert.Empty(t, c.Visible())
	assert.Zero(t, c.Total())
}

func TestWithQueryKeepsDefaults(t *testing.T) {
	backend := newFakeBackend(3)
	c := New(backend.fetch, ProgramFields(), WithPageSize[portal.Program](5), WithQuery[portal.Program](portal.ListQuery{Status: "open"}))
	require.NoError(t, c.Load(context.Background()))
	assert.Equal(t, portal.ListQuery{Page: 1, Limit: 5, Status: "open"}, backend.calls[0])
}

func TestSortFieldsListed(t *testing.T) {
	fetch := func(context.Context, portal.ListQuery) (portal.Page[portal.Mentor], error) {
		return portal.Page[portal.Mentor]{}, nil
	}
	c := New(fetch, MentorFields())
	assert.Equal(t, []string{"department", "name", "position"}, c.SortFields())
}
