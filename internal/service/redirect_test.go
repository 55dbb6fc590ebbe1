package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"redirector/internal/config"
	"redirector/internal/domain"
	"redirector/internal/repository"
	"redirector/internal/service"
	"redirector/internal/service/mocks"
	"redirector/internal/validation"
)

type deps struct {
	redirects  *mocks.MockRedirectStore
	moderation *mocks.MockModerationStore
	generator  *mocks.MockIdentifierGenerator
	cache      *mocks.MockCache
	validator  *mocks.MockURLValidator
	recorder   *mocks.MockBusinessRecorder
}

func newMockedService(t *testing.T) (*service.RedirectService, deps) {
	d := deps{
		redirects:  mocks.NewMockRedirectStore(t),
		moderation: mocks.NewMockModerationStore(t),
		generator:  mocks.NewMockIdentifierGenerator(t),
		cache:      mocks.NewMockCache(t),
		validator:  mocks.NewMockURLValidator(t),
		recorder:   mocks.NewMockBusinessRecorder(t),
	}
	d.recorder.EXPECT().RecordBusiness(mock.Anything, mock.Anything, mock.Anything).Return().Maybe()

	cfg := &config.AppConfig{BaseURL: "http://sho.rt", MaxAllocationAttempts: 3}
	svc := service.NewRedirectService(
		d.redirects, d.moderation, d.generator, d.cache, d.validator, d.recorder, cfg, discardLogger(),
	)
	return svc, d
}

var errDB = errors.New("connection reset by peer")

// Submit tests

func TestSubmit_ExistingEnabled(t *testing.T) {
	svc, d := newMockedService(t)

	d.validator.EXPECT().ValidateURL("https://example.com").Return(nil)
	d.moderation.EXPECT().IsDomainBlacklisted(mock.Anything, "example.com").Return(false, nil)
	d.redirects.EXPECT().FindByURL(mock.Anything, "https://example.com").
		Return(&domain.Redirect{ID: "abcde", URL: "https://example.com", Enabled: true}, nil)

	resp, err := svc.Submit(context.Background(), "https://example.com", "unknown")
	require.NoError(t, err)
	assert.Equal(t, &domain.SubmitResponse{
		ID:       "abcde",
		ShortURL: "http://sho.rt/abcde",
		URL:      "https://example.com",
	}, resp)
}

func TestSubmit_HostIsNormalized(t *testing.T) {
	svc, d := newMockedService(t)

	d.validator.EXPECT().ValidateURL("https://WWW.Example.COM/Path").Return(nil)
	d.moderation.EXPECT().IsDomainBlacklisted(mock.Anything, "example.com").Return(true, nil)

	_, err := svc.Submit(context.Background(), "https://WWW.Example.COM/Path", "unknown")
	assert.ErrorIs(t, err, service.ErrDomainBlacklisted)
}

func TestSubmit_ValidatorRejects(t *testing.T) {
	svc, d := newMockedService(t)

	d.validator.EXPECT().ValidateURL("ftp:/nohost").Return(validation.ErrInvalidURLFormat)

	_, err := svc.Submit(context.Background(), "ftp:/nohost", "unknown")
	assert.ErrorIs(t, err, service.ErrInvalidURL)
	assert.ErrorIs(t, err, validation.ErrInvalidURLFormat)

	var svcErr *service.Error
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, "not a valid URL", svcErr.Message)
}

func TestSubmit_DomainCheckFails(t *testing.T) {
	svc, d := newMockedService(t)

	d.validator.EXPECT().ValidateURL("https://example.com").Return(nil)
	d.moderation.EXPECT().IsDomainBlacklisted(mock.Anything, "example.com").Return(false, errDB)

	_, err := svc.Submit(context.Background(), "https://example.com", "unknown")
	assert.ErrorIs(t, err, service.ErrPersistence)
	assert.ErrorIs(t, err, errDB)
}

func TestSubmit_AllocatesNewID(t *testing.T) {
	svc, d := newMockedService(t)

	d.validator.EXPECT().ValidateURL("https://example.com").Return(nil)
	d.moderation.EXPECT().IsDomainBlacklisted(mock.Anything, "example.com").Return(false, nil)
	d.redirects.EXPECT().FindByURL(mock.Anything, "https://example.com").Return(nil, repository.ErrNotFound)

	d.generator.EXPECT().Generate().Return("taken").Once()
	d.redirects.EXPECT().FindByID(mock.Anything, "taken").Return(&domain.Redirect{ID: "taken"}, nil)

	d.generator.EXPECT().Generate().Return("fresh").Once()
	d.redirects.EXPECT().FindByID(mock.Anything, "fresh").Return(nil, repository.ErrNotFound)
	d.moderation.EXPECT().ContainsBlacklistedWord(mock.Anything, "fresh").Return(false, nil)
	d.redirects.EXPECT().Create(mock.Anything, "fresh", "https://example.com", "203.0.113.5").
		Return(&domain.Redirect{ID: "fresh", URL: "https://example.com", Enabled: true}, nil)

	resp, err := svc.Submit(context.Background(), "https://example.com", "203.0.113.5")
	require.NoError(t, err)
	assert.Equal(t, "fresh", resp.ID)
}

func TestSubmit_LostURLRaceReturnsWinner(t *testing.T) {
	svc, d := newMockedService(t)

	d.validator.EXPECT().ValidateURL("https://example.com").Return(nil)
	d.moderation.EXPECT().IsDomainBlacklisted(mock.Anything, "example.com").Return(false, nil)
	d.redirects.EXPECT().FindByURL(mock.Anything, "https://example.com").Return(nil, repository.ErrNotFound).Once()

	d.generator.EXPECT().Generate().Return("mine1")
	d.redirects.EXPECT().FindByID(mock.Anything, "mine1").Return(nil, repository.ErrNotFound)
	d.moderation.EXPECT().ContainsBlacklistedWord(mock.Anything, "mine1").Return(false, nil)
	d.redirects.EXPECT().Create(mock.Anything, "mine1", "https://example.com", "unknown").
		Return(nil, repository.ErrDuplicate)
	d.redirects.EXPECT().FindByURL(mock.Anything, "https://example.com").
		Return(&domain.Redirect{ID: "their", URL: "https://example.com", Enabled: true}, nil).Once()

	resp, err := svc.Submit(context.Background(), "https://example.com", "unknown")
	require.NoError(t, err)
	assert.Equal(t, "their", resp.ID)
}

func TestSubmit_CreateFailsHard(t *testing.T) {
	svc, d := newMockedService(t)

	d.validator.EXPECT().ValidateURL("https://example.com").Return(nil)
	d.moderation.EXPECT().IsDomainBlacklisted(mock.Anything, "example.com").Return(false, nil)
	d.redirects.EXPECT().FindByURL(mock.Anything, "https://example.com").Return(nil, repository.ErrNotFound)
	d.generator.EXPECT().Generate().Return("abcde")
	d.redirects.EXPECT().FindByID(mock.Anything, "abcde").Return(nil, repository.ErrNotFound)
	d.moderation.EXPECT().ContainsBlacklistedWord(mock.Anything, "abcde").Return(false, nil)
	d.redirects.EXPECT().Create(mock.Anything, "abcde", "https://example.com", "unknown").Return(nil, errDB)

	_, err := svc.Submit(context.Background(), "https://example.com", "unknown")
	assert.ErrorIs(t, err, service.ErrPersistence)
	assert.ErrorIs(t, err, errDB)
}

func TestSubmit_ExhaustsAttempts(t *testing.T) {
	svc, d := newMockedService(t)

	d.validator.EXPECT().ValidateURL("https://example.com").Return(nil)
	d.moderation.EXPECT().IsDomainBlacklisted(mock.Anything, "example.com").Return(false, nil)
	d.redirects.EXPECT().FindByURL(mock.Anything, "https://example.com").Return(nil, repository.ErrNotFound)
	d.generator.EXPECT().Generate().Return("taken").Times(3)
	d.redirects.EXPECT().FindByID(mock.Anything, "taken").Return(&domain.Redirect{ID: "taken"}, nil).Times(3)

	_, err := svc.Submit(context.Background(), "https://example.com", "unknown")
	assert.ErrorIs(t, err, service.ErrExhausted)
}

// Resolve tests

func TestResolve_InvalidIDs(t *testing.T) {
	tests := []struct {
		id      string
		wantErr error
	}{
		{"", service.ErrNoID},
		{"abcd", service.ErrInvalidID},
		{"abcdef", service.ErrInvalidID},
		{"ab-de", service.ErrInvalidID},
		{"ábcde", service.ErrInvalidID},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			svc, _ := newMockedService(t)

			_, err := svc.Resolve(context.Background(), tt.id)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, service.ErrValidation)
		})
	}
}

func TestResolve_CacheHitSkipsStore(t *testing.T) {
	svc, d := newMockedService(t)

	d.cache.EXPECT().Get("abcde").
		Return(domain.RedirectSummary{ID: "abcde", URL: "https://www.example.com/x", Enabled: true}, true)
	d.moderation.EXPECT().IsDomainBlacklisted(mock.Anything, "example.com").Return(false, nil)
	d.redirects.EXPECT().IncrementAccess(mock.Anything, "abcde").Return(nil)

	target, err := svc.Resolve(context.Background(), "abcde")
	require.NoError(t, err)
	assert.Equal(t, "https://www.example.com/x", target)
}

func TestResolve_CacheMissPopulates(t *testing.T) {
	svc, d := newMockedService(t)

	d.cache.EXPECT().Get("abcde").Return(domain.RedirectSummary{}, false)
	d.redirects.EXPECT().FindByID(mock.Anything, "abcde").
		Return(&domain.Redirect{ID: "abcde", URL: "https://example.com", Enabled: true, AccessCount: 7}, nil)
	d.cache.EXPECT().Set(domain.RedirectSummary{ID: "abcde", URL: "https://example.com", Enabled: true}).Return()
	d.moderation.EXPECT().IsDomainBlacklisted(mock.Anything, "example.com").Return(false, nil)
	d.redirects.EXPECT().IncrementAccess(mock.Anything, "abcde").Return(nil)

	_, err := svc.Resolve(context.Background(), "abcde")
	require.NoError(t, err)
}

func TestResolve_NotFound(t *testing.T) {
	svc, d := newMockedService(t)

	d.cache.EXPECT().Get("abcde").Return(domain.RedirectSummary{}, false)
	d.redirects.EXPECT().FindByID(mock.Anything, "abcde").Return(nil, repository.ErrNotFound)

	_, err := svc.Resolve(context.Background(), "abcde")
	assert.ErrorIs(t, err, service.ErrRedirectNotFound)
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestResolve_Disabled(t *testing.T) {
	svc, d := newMockedService(t)

	d.cache.EXPECT().Get("abcde").
		Return(domain.RedirectSummary{ID: "abcde", URL: "https://example.com", Enabled: false}, true)

	_, err := svc.Resolve(context.Background(), "abcde")
	assert.ErrorIs(t, err, service.ErrRedirectDisabled)
}

func TestResolve_DeletedConcurrently(t *testing.T) {
	svc, d := newMockedService(t)

	d.cache.EXPECT().Get("abcde").
		Return(domain.RedirectSummary{ID: "abcde", URL: "https://example.com", Enabled: true}, true)
	d.moderation.EXPECT().IsDomainBlacklisted(mock.Anything, "example.com").Return(false, nil)
	d.redirects.EXPECT().IncrementAccess(mock.Anything, "abcde").Return(repository.ErrNoRowsAffected)
	d.cache.EXPECT().Delete("abcde").Return()
	d.redirects.EXPECT().FindByID(mock.Anything, "abcde").Return(nil, repository.ErrNotFound)

	_, err := svc.Resolve(context.Background(), "abcde")
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestResolve_StaleCachedEnabledState(t *testing.T) {
	svc, d := newMockedService(t)

	d.cache.EXPECT().Get("abcde").
		Return(domain.RedirectSummary{ID: "abcde", URL: "https://example.com", Enabled: true}, true)
	d.moderation.EXPECT().IsDomainBlacklisted(mock.Anything, "example.com").Return(false, nil)
	d.redirects.EXPECT().IncrementAccess(mock.Anything, "abcde").Return(repository.ErrNoRowsAffected)
	d.cache.EXPECT().Delete("abcde").Return()
	d.redirects.EXPECT().FindByID(mock.Anything, "abcde").
		Return(&domain.Redirect{ID: "abcde", URL: "https://example.com", Enabled: false}, nil)

	_, err := svc.Resolve(context.Background(), "abcde")
	assert.ErrorIs(t, err, service.ErrRedirectDisabled)
	assert.ErrorIs(t, err, service.ErrForbidden)
}

func TestResolve_IncrementFails(t *testing.T) {
	svc, d := newMockedService(t)

	d.cache.EXPECT().Get("abcde").
		Return(domain.RedirectSummary{ID: "abcde", URL: "https://example.com", Enabled: true}, true)
	d.moderation.EXPECT().IsDomainBlacklisted(mock.Anything, "example.com").Return(false, nil)
	d.redirects.EXPECT().IncrementAccess(mock.Anything, "abcde").Return(errDB)

	_, err := svc.Resolve(context.Background(), "abcde")
	assert.ErrorIs(t, err, service.ErrPersistence)
}

// Moderation tests

func TestToggleEnabled_DisablesAndInvalidates(t *testing.T) {
	svc, d := newMockedService(t)

	d.redirects.EXPECT().FindByID(mock.Anything, "abcde").
		Return(&domain.Redirect{ID: "abcde", Enabled: true}, nil)
	d.redirects.EXPECT().Disable(mock.Anything, "abcde").Return(nil)
	d.cache.EXPECT().Delete("abcde").Return()

	state, err := svc.ToggleEnabled(context.Background(), "abcde")
	require.NoError(t, err)
	assert.Equal(t, domain.StateDisabled, state)
}

func TestToggleEnabled_StoreFailure(t *testing.T) {
	svc, d := newMockedService(t)

	d.redirects.EXPECT().FindByID(mock.Anything, "abcde").
		Return(&domain.Redirect{ID: "abcde", Enabled: false}, nil)
	d.redirects.EXPECT().Enable(mock.Anything, "abcde").Return(repository.ErrNoRowsAffected)

	_, err := svc.ToggleEnabled(context.Background(), "abcde")
	assert.ErrorIs(t, err, service.ErrPersistence)
	assert.ErrorIs(t, err, repository.ErrNoRowsAffected)
}

func TestToggleDomainBlacklist_Invalid(t *testing.T) {
	svc, d := newMockedService(t)

	d.validator.EXPECT().ValidateDomain("not_a_domain").Return(validation.ErrInvalidDomain)

	_, err := svc.ToggleDomainBlacklist(context.Background(), "not_a_domain")
	assert.ErrorIs(t, err, service.ErrInvalidDomain)
	assert.ErrorIs(t, err, service.ErrValidation)
}

func TestToggleDomainBlacklist_Empty(t *testing.T) {
	svc, _ := newMockedService(t)

	for _, v := range []string{"", "  ", "www."} {
		_, err := svc.ToggleDomainBlacklist(context.Background(), v)
		assert.ErrorIs(t, err, service.ErrNoValue, "input %q", v)
	}
}

func TestToggleWordBlacklist_RemoveFails(t *testing.T) {
	svc, d := newMockedService(t)

	d.moderation.EXPECT().IsWordBlacklisted(mock.Anything, "abc").Return(true, nil)
	d.moderation.EXPECT().RemoveWord(mock.Anything, "abc").Return(repository.ErrNoRowsAffected)

	_, err := svc.ToggleWordBlacklist(context.Background(), "abc")
	assert.ErrorIs(t, err, service.ErrPersistence)
}

func TestDelete_LooksUpFirst(t *testing.T) {
	svc, d := newMockedService(t)

	d.redirects.EXPECT().FindByID(mock.Anything, "abcde").Return(&domain.Redirect{ID: "abcde"}, nil)
	d.redirects.EXPECT().Delete(mock.Anything, "abcde").Return(nil)
	d.cache.EXPECT().Delete("abcde").Return()

	require.NoError(t, svc.Delete(context.Background(), "abcde"))
}

func TestDelete_LookupFails(t *testing.T) {
	svc, d := newMockedService(t)

	d.redirects.EXPECT().FindByID(mock.Anything, "abcde").Return(nil, errDB)

	err := svc.Delete(context.Background(), "abcde")
	assert.ErrorIs(t, err, service.ErrPersistence)
	assert.NotErrorIs(t, err, service.ErrNotFound)
}

func TestLists_WrapStoreErrors(t *testing.T) {
	svc, d := newMockedService(t)
	ctx := context.Background()

	d.redirects.EXPECT().ListAll(mock.Anything).Return(nil, errDB)
	d.redirects.EXPECT().ListEnabled(mock.Anything).Return(nil, errDB)
	d.redirects.EXPECT().ListDisabled(mock.Anything).Return(nil, errDB)
	d.moderation.EXPECT().ListDomains(mock.Anything).Return(nil, errDB)
	d.moderation.EXPECT().ListWords(mock.Anything).Return(nil, errDB)

	_, err := svc.ListAll(ctx)
	assert.ErrorIs(t, err, service.ErrPersistence)
	_, err = svc.ListEnabled(ctx)
	assert.ErrorIs(t, err, service.ErrPersistence)
	_, err = svc.ListDisabled(ctx)
	assert.ErrorIs(t, err, service.ErrPersistence)
	_, err = svc.ListBlacklistedDomains(ctx)
	assert.ErrorIs(t, err, service.ErrPersistence)
	_, err = svc.ListBlacklistedWords(ctx)
	assert.ErrorIs(t, err, service.ErrPersistence)
}

func TestHostname(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"https://example.com/x", "example.com"},
		{"https://www.example.com/x", "example.com"},
		{"https://WWW.EXAMPLE.com:8443/x", "example.com"},
		{"https://www.www.example.com", "www.example.com"},
		{"https://wwwexample.com", "wwwexample.com"},
		{"https://sub.www.example.com", "sub.www.example.com"},
		{"http://203.0.113.7/", "203.0.113.7"},
		{"::not a url", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, service.Hostname(tt.in))
		})
	}
}
