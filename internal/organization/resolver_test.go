package organization_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/tmcampos/spendlane/internal/organization"
)

func org(name, slug string) *organization.Organization {
	return &organization.Organization{
		ID:     uuid.New(),
		Name:   name,
		Slug:   slug,
		Active: true,
	}
}

func TestResolver_DefaultWins(t *testing.T) {
	type args struct {
		identifier string
		multiOrg   bool
	}

	type testCase struct {
		name string
		args args
	}

	tests := []testCase{
		{name: "MultiOrgOff", args: args{identifier: "Other Org", multiOrg: false}},
		{name: "EmptyIdentifier", args: args{identifier: "", multiOrg: true}},
		{name: "WhitespaceIdentifier", args: args{identifier: "   ", multiOrg: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			// The repository must never be consulted: the default tenant wins
			// unconditionally and a hint cannot redirect the row.
			repo := organization.NewMockRepository(ctrl)
			resolver := organization.NewResolver(repo)

			def := org("Acme", "acme")
			got, err := resolver.Resolve(context.Background(), tt.args.identifier, def, tt.args.multiOrg)
			require.NoError(t, err)
			assert.Same(t, def, got)
		})
	}
}

func TestResolver_MultiOrgLookup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	target := org("Globex", "globex")

	repo := organization.NewMockRepository(ctrl)
	repo.EXPECT().
		FindByNameOrSlug(gomock.Any(), "Globex").
		Return(target, nil).
		Times(1)

	resolver := organization.NewResolver(repo)
	def := org("Acme", "acme")

	got, err := resolver.Resolve(context.Background(), "Globex", def, true)
	require.NoError(t, err)
	assert.Same(t, target, got)

	// Second resolve of the same identifier hits the run cache; the single
	// Times(1) expectation above fails the test if the repo is hit again.
	got, err = resolver.Resolve(context.Background(), "globex", def, true)
	require.NoError(t, err)
	assert.Same(t, target, got)
}

func TestResolver_NotFoundListsKnownOrgs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := organization.NewMockRepository(ctrl)
	repo.EXPECT().
		FindByNameOrSlug(gomock.Any(), "Nonexistent").
		Return(nil, organization.ErrNotFound)
	repo.EXPECT().
		ListActive(gomock.Any(), 11).
		Return([]*organization.Organization{org("Acme", "acme"), org("Globex", "globex")}, nil)

	resolver := organization.NewResolver(repo)

	_, err := resolver.Resolve(context.Background(), "Nonexistent", org("Acme", "acme"), true)
	require.Error(t, err)
	require.ErrorIs(t, err, organization.ErrNotFound)

	var nfErr *organization.NotFoundError
	require.True(t, errors.As(err, &nfErr))
	assert.Equal(t, []string{"Acme", "Globex"}, nfErr.Known)
	assert.False(t, nfErr.Truncated)
	assert.Contains(t, err.Error(), "Acme, Globex")
}

func TestResolver_NotFoundTruncatesLongList(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var orgs []*organization.Organization
	for _, name := range []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K"} {
		orgs = append(orgs, org(name, name))
	}

	repo := organization.NewMockRepository(ctrl)
	repo.EXPECT().
		FindByNameOrSlug(gomock.Any(), "Nope").
		Return(nil, organization.ErrNotFound)
	repo.EXPECT().
		ListActive(gomock.Any(), 11).
		Return(orgs, nil)

	resolver := organization.NewResolver(repo)

	_, err := resolver.Resolve(context.Background(), "Nope", org("A", "a"), true)
	require.Error(t, err)

	var nfErr *organization.NotFoundError
	require.True(t, errors.As(err, &nfErr))
	assert.Len(t, nfErr.Known, 10)
	assert.True(t, nfErr.Truncated)
	assert.Contains(t, err.Error(), "...")
}

func TestResolver_RepoFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := organization.NewMockRepository(ctrl)
	repo.EXPECT().
		FindByNameOrSlug(gomock.Any(), "Globex").
		Return(nil, errors.New("db error"))

	resolver := organization.NewResolver(repo)

	_, err := resolver.Resolve(context.Background(), "Globex", org("Acme", "acme"), true)
	require.Error(t, err)
	assert.NotErrorIs(t, err, organization.ErrNotFound)
}
