package cache_test

import (
	"shortener/pkg/cache"
	"shortener/pkg/domain"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKeyFormats(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{name: "link with domain only", got: cache.LinkKey("abc123", 5, 0), want: "abc123-5-"},
		{name: "link with domain and user", got: cache.LinkKey("abc123", 5, 9), want: "abc123-5-9"},
		{name: "link with user only", got: cache.LinkKey("abc123", 0, 9), want: "abc123--9"},
		{name: "anonymous link", got: cache.LinkKey("abc123", 0, 0), want: "abc123--"},
		{name: "domain", got: cache.DomainKey("example.com"), want: "d-example.com"},
		{name: "host", got: cache.HostKey("www.example.com"), want: "h-www.example.com"},
		{name: "stats", got: cache.StatsKey(42), want: "s-42"},
		{name: "user by email", got: cache.UserKey("a@b.com"), want: "u-a@b.com"},
		{name: "user by api key", got: cache.UserKey("k1"), want: "u-k1"},
		{name: "generic link", got: cache.Key(cache.KindLink, "abc123", "5"), want: "abc123-5-"},
		{name: "generic user", got: cache.Key(cache.KindUser, "a@b.com"), want: "u-a@b.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.got)
		})
	}
}

func TestLinkKeyDeterministicAndScoped(t *testing.T) {
	addresses := []string{"abc123", "x", "with-dash", "UPPER"}
	ids := []int64{0, 1, 5, 12, 1000}

	for _, addr := range addresses {
		seen := map[string][2]int64{}
		for _, d := range ids {
			for _, u := range ids {
				k1 := cache.LinkKey(addr, domain.DomainID(d), domain.UserID(u))
				k2 := cache.LinkKey(addr, domain.DomainID(d), domain.UserID(u))
				require.Equal(t, k1, k2, "key must be deterministic")

				prev, dup := seen[k1]
				require.False(t, dup, "scopes %v and %v collide on %q", prev, [2]int64{d, u}, k1)
				seen[k1] = [2]int64{d, u}
			}
		}
	}
}

func TestParseKind(t *testing.T) {
	for _, k := range cache.Kinds {
		got, err := cache.ParseKind(string(k))
		require.NoError(t, err)
		require.Equal(t, k, got)
	}

	_, err := cache.ParseKind("session")
	require.Error(t, err)
}

func TestParseKey(t *testing.T) {
	tests := []struct {
		name    string
		kind    cache.Kind
		fields  []string
		want    string
		wantErr bool
	}{
		{name: "link address only", kind: cache.KindLink, fields: []string{"abc"}, want: "abc--"},
		{name: "link full scope", kind: cache.KindLink, fields: []string{"abc", "5", "7"}, want: "abc-5-7"},
		{name: "link public scope", kind: cache.KindLink, fields: []string{"abc", "5", ""}, want: "abc-5-"},
		{name: "link extra field", kind: cache.KindLink, fields: []string{"abc", "5", "7", "9"}, wantErr: true},
		{name: "link non numeric domain", kind: cache.KindLink, fields: []string{"abc", "example.com"}, wantErr: true},
		{name: "link empty address", kind: cache.KindLink, fields: []string{"", "5"}, wantErr: true},
		{name: "user", kind: cache.KindUser, fields: []string{"a@b.com"}, want: "u-a@b.com"},
		{name: "user extra field", kind: cache.KindUser, fields: []string{"a@b.com", "k1"}, wantErr: true},
		{name: "domain", kind: cache.KindDomain, fields: []string{"example.com"}, want: "d-example.com"},
		{name: "host extra field", kind: cache.KindHost, fields: []string{"www", "example.com"}, wantErr: true},
		{name: "stats", kind: cache.KindStats, fields: []string{"42"}, want: "s-42"},
		{name: "stats non numeric", kind: cache.KindStats, fields: []string{"abc"}, wantErr: true},
		{name: "no fields", kind: cache.KindDomain, wantErr: true},
		{name: "unknown kind", kind: cache.Kind("session"), fields: []string{"x"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := cache.ParseKey(tt.kind, tt.fields...)
			if tt.wantErr {
				require.Error(t, err)

				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestKeys(t *testing.T) {
	t.Run("user has one key per identifier", func(t *testing.T) {
		keys := cache.Keys(&domain.User{Email: "a@b.com", APIKey: "k1"})
		require.Equal(t, []string{"u-a@b.com", "u-k1"}, keys)
	})

	t.Run("user without api key", func(t *testing.T) {
		keys := cache.Keys(&domain.User{Email: "a@b.com"})
		require.Equal(t, []string{"u-a@b.com"}, keys)
	})

	t.Run("owned link has owner and public scope", func(t *testing.T) {
		keys := cache.Keys(&domain.Link{Address: "abc123", DomainID: 5, UserID: 7})
		require.Equal(t, []string{"abc123-5-7", "abc123-5-"}, keys)
	})

	t.Run("anonymous link collapses to one key", func(t *testing.T) {
		keys := cache.Keys(&domain.Link{Address: "abc123", DomainID: 5})
		require.Equal(t, []string{"abc123-5-"}, keys)
	})

	t.Run("domain host and stats", func(t *testing.T) {
		require.Equal(t, []string{"d-example.com"}, cache.Keys(&domain.Domain{Address: "example.com"}))
		require.Equal(t, []string{"h-www.example.com"}, cache.Keys(&domain.Host{Address: "www.example.com"}))
		require.Equal(t, []string{"s-3"}, cache.Keys(&domain.Stats{LinkID: 3}))
	})

	t.Run("nil and unsupported", func(t *testing.T) {
		var u *domain.User
		require.Empty(t, cache.Keys(u))
		require.Empty(t, cache.Keys("abc123"))
		require.Empty(t, cache.Keys(nil))
	})
}

func TestKeysOfCustomIndexes(t *testing.T) {
	// adding an identifier is a table change
	indexes := append([]cache.Index[*domain.User]{}, cache.UserIndexes...)
	indexes = append(indexes, cache.Index[*domain.User]{
		Kind:   cache.KindUser,
		Fields: func(u *domain.User) []string { return []string{"id:1"} },
	})

	keys := cache.KeysOf(&domain.User{Email: "a@b.com", APIKey: "k1"}, indexes)
	require.Equal(t, []string{"u-a@b.com", "u-k1", "u-id:1"}, keys)
}
