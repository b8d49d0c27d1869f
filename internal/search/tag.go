// Package search turns committed search input into tags and derives the
// enrollment and user views from the roster.
package search

import (
	"errors"
	"strings"

	"github.com/noah-isme/matricula-dashboard-api/internal/models"
)

var (
	ErrEmptyTag     = errors.New("tag is empty")
	ErrDuplicateTag = errors.New("tag already present")
)

// ParseTag classifies committed input. Status and type names match
// case-insensitively; any other text becomes a keyword tag that is valid only
// if it would match at least one student.
func ParseTag(input string, existing []models.SearchTag, students []models.Student) (models.SearchTag, error) {
	value := strings.TrimSpace(input)
	if value == "" {
		return models.SearchTag{}, ErrEmptyTag
	}
	for _, tag := range existing {
		if strings.EqualFold(tag.Value, value) {
			return models.SearchTag{}, ErrDuplicateTag
		}
	}

	if status, ok := models.LookupEnrollmentStatus(value); ok {
		return models.SearchTag{
			Value:        value,
			DisplayValue: "Estado: " + string(status),
			Type:         models.TagTypeStatus,
			Valid:        true,
		}, nil
	}
	if typ, ok := models.LookupEnrollmentType(value); ok {
		return models.SearchTag{
			Value:        value,
			DisplayValue: "Tipo: " + string(typ),
			Type:         models.TagTypeType,
			Valid:        true,
		}, nil
	}

	lower := strings.ToLower(value)
	valid := false
	for _, s := range students {
		if keywordMatches(s, lower) {
			valid = true
			break
		}
	}
	return models.SearchTag{
		Value:        value,
		DisplayValue: value,
		Type:         models.TagTypeKeyword,
		Valid:        valid,
	}, nil
}

func keywordMatches(s models.Student, lower string) bool {
	return strings.Contains(strings.ToLower(s.FullName), lower) || strings.Contains(s.DocumentNumber, lower)
}

// AddTag parses input and appends it to a copy of tags.
func AddTag(tags []models.SearchTag, input string, students []models.Student) ([]models.SearchTag, models.SearchTag, error) {
	tag, err := ParseTag(input, tags, students)
	if err != nil {
		return tags, models.SearchTag{}, err
	}
	next := make([]models.SearchTag, 0, len(tags)+1)
	next = append(next, tags...)
	return append(next, tag), tag, nil
}

// RemoveTag drops the tag with the given value.
func RemoveTag(tags []models.SearchTag, value string) []models.SearchTag {
	next := make([]models.SearchTag, 0, len(tags))
	for _, tag := range tags {
		if strings.EqualFold(tag.Value, strings.TrimSpace(value)) {
			continue
		}
		next = append(next, tag)
	}
	return next
}

// PopTag removes the last tag, as backspace on an empty input does.
func PopTag(tags []models.SearchTag) []models.SearchTag {
	if len(tags) == 0 {
		return []models.SearchTag{}
	}
	next := make([]models.SearchTag, len(tags)-1)
	copy(next, tags[:len(tags)-1])
	return next
}
