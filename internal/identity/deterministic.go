package identity

import (
	"strings"

	hashid "github.com/goliatone/hashid/pkg/hashid"
	"github.com/google/uuid"
)

// UUID derives a deterministic UUID from a stable key using go-hashid. The
// key is normalised first, so keys differing only in case share an id.
//
// Callers must prefix keys by resource kind to avoid cross-entity collisions.
func UUID(key string) uuid.UUID {
	return derive(key, true)
}

// ExactUUID is UUID without normalisation: every byte of the key counts.
func ExactUUID(key string) uuid.UUID {
	return derive(key, false)
}

func derive(key string, normalize bool) uuid.UUID {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return uuid.Nil
	}
	uid, err := hashid.NewUUID(trimmed, hashid.WithHashAlgorithm(hashid.SHA256), hashid.WithNormalization(normalize))
	if err != nil || uid == uuid.Nil {
		return uuid.NewSHA1(uuid.NameSpaceOID, []byte(trimmed))
	}
	return uid
}

// TranslationUUID identifies the translation row of an entity in a locale.
// Two writers racing on the same pair produce the same primary key. Locale
// codes are stored as received, so "DE" and "de" are distinct rows.
func TranslationUUID(kind string, entityID uuid.UUID, locale string) uuid.UUID {
	return ExactUUID("autotranslate:" + strings.TrimSpace(kind) + "_translation:" + entityID.String() + ":" + strings.TrimSpace(locale))
}

// LocaleUUID identifies a locale row. Lookups by code are case-insensitive,
// and so is this id.
func LocaleUUID(code string) uuid.UUID {
	return UUID("autotranslate:locale:" + strings.ToLower(strings.TrimSpace(code)))
}
