package cache

import (
	"fmt"
	"shortener/pkg/domain"
	"strconv"
	"strings"
)

// Kind names an entity family stored in the cache. Every kind except
// KindLink owns a short key prefix; link keys are the bare composite.
type Kind string

const (
	KindLink   Kind = "link"
	KindDomain Kind = "domain"
	KindHost   Kind = "host"
	KindStats  Kind = "stats"
	KindUser   Kind = "user"
)

// Kinds lists every supported kind.
var Kinds = []Kind{KindLink, KindDomain, KindHost, KindStats, KindUser} //nolint: gochecknoglobals

var prefixes = map[Kind]string{ //nolint: gochecknoglobals
	KindDomain: "d",
	KindHost:   "h",
	KindStats:  "s",
	KindUser:   "u",
}

// ParseKind converts a kind name such as "user" into a Kind.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds {
		if string(k) == s {
			return k, nil
		}
	}

	return "", fmt.Errorf("unknown cache kind %q", s)
}

// Key derives the cache key of an entity from its identifying fields.
//
// For KindLink the fields are address, domain id and user id, always
// rendered as three dash separated segments; missing fields are empty
// segments and fields past the third are ignored. Every other kind renders
// as "<prefix>-<field>". Use ParseKey for fields that were not produced by
// this package.
//
// Key is a pure function: the read path and the invalidation path agree on
// addressing only because of that.
func Key(kind Kind, fields ...string) string {
	if kind == KindLink {
		var parts [linkFields]string
		copy(parts[:], fields)

		return strings.Join(parts[:], "-")
	}

	prefix, ok := prefixes[kind]
	if !ok {
		prefix = string(kind)
	}

	return prefix + "-" + strings.Join(fields, "-")
}

// linkFields is the number of identifying fields of a link key.
const linkFields = 3

// ParseKey is Key for untrusted input: it checks that fields match the
// identifying fields of kind. Links take an address plus an optional domain
// id and user id; every other kind takes exactly one field. The first field
// must not be empty and ids must be numeric.
func ParseKey(kind Kind, fields ...string) (string, error) {
	maxFields := 1
	if kind == KindLink {
		maxFields = linkFields
	}
	if len(fields) == 0 || len(fields) > maxFields {
		return "", fmt.Errorf("cache kind %q takes 1 to %d fields, got %d", kind, maxFields, len(fields))
	}
	if fields[0] == "" {
		return "", fmt.Errorf("cache kind %q needs a non-empty first field", kind)
	}
	if _, ok := prefixes[kind]; !ok && kind != KindLink {
		return "", fmt.Errorf("unknown cache kind %q", kind)
	}

	ids := fields[1:]
	if kind == KindStats {
		ids = fields
	}
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, err := strconv.ParseInt(id, 10, 64); err != nil {
			return "", fmt.Errorf("cache kind %q expects numeric ids, got %q", kind, id)
		}
	}

	return Key(kind, fields...), nil
}

// LinkKey returns the key of a link in the given (domain, user) scope.
func LinkKey(address string, domainID domain.DomainID, userID domain.UserID) string {
	return Key(KindLink, address, idSegment(domainID), idSegment(userID))
}

// DomainKey returns the key of a custom domain.
func DomainKey(address string) string { return Key(KindDomain, address) }

// HostKey returns the key of a host mapping.
func HostKey(address string) string { return Key(KindHost, address) }

// StatsKey returns the key of a link's aggregated statistics.
func StatsKey(linkID domain.LinkID) string { return Key(KindStats, idSegment(linkID)) }

// UserKey returns the key of a user looked up by email or by API key.
func UserKey(emailOrKey string) string { return Key(KindUser, emailOrKey) }

// idSegment renders an optional numeric id; zero is the absent id.
func idSegment[T ~int64](id T) string {
	if id == 0 {
		return ""
	}

	return strconv.FormatInt(int64(id), 10)
}

// Index is one key under which an entity of type T can be cached. Fields
// extracts the identifying fields; the first field is the primary
// identifier and an empty one means the entity is not addressable through
// this index.
type Index[T any] struct {
	Kind   Kind
	Fields func(T) []string
}

// Indexes describing every cache entry an entity may own. Read paths and
// invalidation both go through these tables, so adding an identifier is a
// matter of adding a row.
var (
	LinkIndexes = []Index[*domain.Link]{ //nolint: gochecknoglobals
		// owner scope, used when the user is known
		{Kind: KindLink, Fields: func(l *domain.Link) []string {
			return []string{l.Address, idSegment(l.DomainID), idSegment(l.UserID)}
		}},
		// public scope, used by the redirect path
		{Kind: KindLink, Fields: func(l *domain.Link) []string {
			return []string{l.Address, idSegment(l.DomainID), ""}
		}},
	}
	DomainIndexes = []Index[*domain.Domain]{ //nolint: gochecknoglobals
		{Kind: KindDomain, Fields: func(d *domain.Domain) []string { return []string{d.Address} }},
	}
	HostIndexes = []Index[*domain.Host]{ //nolint: gochecknoglobals
		{Kind: KindHost, Fields: func(h *domain.Host) []string { return []string{h.Address} }},
	}
	UserIndexes = []Index[*domain.User]{ //nolint: gochecknoglobals
		{Kind: KindUser, Fields: func(u *domain.User) []string { return []string{u.Email} }},
		{Kind: KindUser, Fields: func(u *domain.User) []string { return []string{u.APIKey} }},
	}
)

// KeysOf returns the distinct keys entity is addressable under, in index
// order.
func KeysOf[T any](entity T, indexes []Index[T]) []string {
	keys := make([]string, 0, len(indexes))
	seen := make(map[string]struct{}, len(indexes))
	for _, idx := range indexes {
		fields := idx.Fields(entity)
		if len(fields) == 0 || fields[0] == "" {
			continue
		}

		key := Key(idx.Kind, fields...)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		keys = append(keys, key)
	}

	return keys
}

// Keys returns every key the given entity can be cached under. A nil
// pointer or an unsupported type yields no keys.
func Keys(entity any) []string {
	switch e := entity.(type) {
	case *domain.Link:
		if e != nil {
			return KeysOf(e, LinkIndexes)
		}
	case *domain.Domain:
		if e != nil {
			return KeysOf(e, DomainIndexes)
		}
	case *domain.Host:
		if e != nil {
			return KeysOf(e, HostIndexes)
		}
	case *domain.User:
		if e != nil {
			return KeysOf(e, UserIndexes)
		}
	case *domain.Stats:
		if e != nil && e.LinkID != 0 {
			return []string{StatsKey(e.LinkID)}
		}
	}

	return nil
}
