package models

// GradeLevel is one educational level with its grades in display order.
type GradeLevel struct {
	Key    string       `json:"key"`
	Level  LevelFilter  `json:"level"`
	Grades []GradeEntry `json:"grades"`
}

// GradeEntry is one grade and its sections.
type GradeEntry struct {
	Grade    string   `json:"grade"`
	Sections []string `json:"sections"`
}

// GradeCatalog lists the grades and sections offered by the school.
type GradeCatalog []GradeLevel

// Level returns the catalog entry for a level.
func (c GradeCatalog) Level(level LevelFilter) (GradeLevel, bool) {
	for _, l := range c {
		if l.Level == level {
			return l, true
		}
	}
	return GradeLevel{}, false
}

// Sections returns the sections of a grade regardless of level.
func (c GradeCatalog) Sections(grade string) ([]string, bool) {
	for _, l := range c {
		for _, g := range l.Grades {
			if g.Grade == grade {
				return g.Sections, true
			}
		}
	}
	return nil, false
}

// HasSection reports whether grade offers section.
func (c GradeCatalog) HasSection(grade, section string) bool {
	sections, ok := c.Sections(grade)
	if !ok {
		return false
	}
	for _, s := range sections {
		if s == section {
			return true
		}
	}
	return false
}

// LevelHasGrade reports whether a level offers grade.
func (c GradeCatalog) LevelHasGrade(level LevelFilter, grade string) bool {
	l, ok := c.Level(level)
	if !ok {
		return false
	}
	for _, g := range l.Grades {
		if g.Grade == grade {
			return true
		}
	}
	return false
}
