package db

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// findByRef looks a record up by full id, unique id prefix or case-insensitive
// name, in that order.
func findByRef[T any](kind, ref string, scopes ...func(*gorm.DB) *gorm.DB) (*T, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, fmt.Errorf("%s %q: %w", kind, ref, ErrNotFound)
	}

	var exact []T
	if err := DB.Scopes(scopes...).Where("id = ?", ref).Limit(1).Find(&exact).Error; err != nil {
		return nil, fmt.Errorf("failed to look up %s: %w", kind, err)
	}
	if len(exact) == 1 {
		return &exact[0], nil
	}

	var matches []T
	err := DB.Scopes(scopes...).
		Where(`id LIKE ? ESCAPE '\' OR LOWER(name) = LOWER(?)`, likeEscaper.Replace(ref)+"%", ref).
		Limit(2).
		Find(&matches).Error
	if err != nil {
		return nil, fmt.Errorf("failed to look up %s: %w", kind, err)
	}

	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("%s %q: %w", kind, ref, ErrNotFound)
	case 1:
		return &matches[0], nil
	default:
		return nil, fmt.Errorf("%s %q: %w", kind, ref, ErrAmbiguous)
	}
}

func notDeleted(tx *gorm.DB) *gorm.DB {
	return tx.Where("status <> ?", "deleted")
}
