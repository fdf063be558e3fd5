package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Category is an upstream category id; CategoryAny (0) means no filter.
type Category int

const (
	CategoryAny               Category = 0
	CategoryGeneralKnowledge  Category = 9
	CategoryBooks             Category = 10
	CategoryFilm              Category = 11
	CategoryMusic             Category = 12
	CategoryMusicalsTheatres  Category = 13
	CategoryTelevision        Category = 14
	CategoryVideoGames        Category = 15
	CategoryBoardGames        Category = 16
	CategoryScienceNature     Category = 17
	CategoryComputers         Category = 18
	CategoryMathematics       Category = 19
	CategoryMythology         Category = 20
	CategorySports            Category = 21
	CategoryGeography         Category = 22
	CategoryHistory           Category = 23
	CategoryPolitics          Category = 24
	CategoryArt               Category = 25
	CategoryCelebrities       Category = 26
	CategoryAnimals           Category = 27
	CategoryVehicles          Category = 28
	CategoryComics            Category = 29
	CategoryGadgets           Category = 30
	CategoryAnimeManga        Category = 31
	CategoryCartoonAnimations Category = 32
)

type categoryEntry struct {
	category Category
	label    string
}

// categoryTable is ordered the way the API lists categories.
var categoryTable = []categoryEntry{
	{CategoryAny, "Any Category"},
	{CategoryGeneralKnowledge, "General Knowledge"},
	{CategoryBooks, "Entertainment: Books"},
	{CategoryFilm, "Entertainment: Film"},
	{CategoryMusic, "Entertainment: Music"},
	{CategoryMusicalsTheatres, "Entertainment: Musicals & Theatres"},
	{CategoryTelevision, "Entertainment: Television"},
	{CategoryVideoGames, "Entertainment: Video Games"},
	{CategoryBoardGames, "Entertainment: Board Games"},
	{CategoryScienceNature, "Science & Nature"},
	{CategoryComputers, "Science: Computers"},
	{CategoryMathematics, "Science: Mathematics"},
	{CategoryMythology, "Mythology"},
	{CategorySports, "Sports"},
	{CategoryGeography, "Geography"},
	{CategoryHistory, "History"},
	{CategoryPolitics, "Politics"},
	{CategoryArt, "Art"},
	{CategoryCelebrities, "Celebrities"},
	{CategoryAnimals, "Animals"},
	{CategoryVehicles, "Vehicles"},
	{CategoryComics, "Entertainment: Comics"},
	{CategoryGadgets, "Science: Gadgets"},
	{CategoryAnimeManga, "Entertainment: Japanese Anime & Manga"},
	{CategoryCartoonAnimations, "Entertainment: Cartoon & Animations"},
}

var categoryLabels = func() map[Category]string {
	m := make(map[Category]string, len(categoryTable))
	for _, e := range categoryTable {
		m[e.category] = e.label
	}
	return m
}()

// Categories returns every category in API order, CategoryAny first.
func Categories() []Category {
	out := make([]Category, 0, len(categoryTable))
	for _, e := range categoryTable {
		out = append(out, e.category)
	}
	return out
}

// Label returns the human-readable category name.
func (c Category) Label() string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

// Wire returns the id sent as the category query parameter.
func (c Category) Wire() int { return int(c) }

// IsAny reports whether the category is omitted from the query.
func (c Category) IsAny() bool { return c == CategoryAny }

func (c Category) String() string { return c.Label() }

// CategoryFromLabel resolves a category by label or numeric id. An empty label or "any" is CategoryAny.
func CategoryFromLabel(label string) (Category, error) {
	label = strings.TrimSpace(label)
	if label == "" || strings.EqualFold(label, "any") {
		return CategoryAny, nil
	}
	for _, e := range categoryTable {
		if strings.EqualFold(e.label, label) {
			return e.category, nil
		}
	}
	if id, err := strconv.Atoi(label); err == nil {
		if _, ok := categoryLabels[Category(id)]; ok {
			return Category(id), nil
		}
	}
	return CategoryAny, &ConfigurationError{Axis: "category", Label: label}
}

// MustCategory is CategoryFromLabel for labels known at build time. It panics on unknown labels.
func MustCategory(label string) Category {
	c, err := CategoryFromLabel(label)
	if err != nil {
		panic(err)
	}
	return c
}

// Difficulty filters questions by difficulty; DifficultyAny means no filter.
type Difficulty int

const (
	DifficultyAny Difficulty = iota
	DifficultyEasy
	DifficultyMedium
	DifficultyHard
)

type axisEntry struct {
	label string
	wire  string
}

var difficultyTable = [...]axisEntry{
	DifficultyAny:    {"Any Difficulty", ""},
	DifficultyEasy:   {"Easy", "easy"},
	DifficultyMedium: {"Medium", "medium"},
	DifficultyHard:   {"Hard", "hard"},
}

// Difficulties returns every difficulty, DifficultyAny first.
func Difficulties() []Difficulty {
	return []Difficulty{DifficultyAny, DifficultyEasy, DifficultyMedium, DifficultyHard}
}

func (d Difficulty) valid() bool { return d >= DifficultyAny && d <= DifficultyHard }

func (d Difficulty) Label() string {
	if !d.valid() {
		return fmt.Sprintf("Difficulty(%d)", int(d))
	}
	return difficultyTable[d].label
}

// Wire returns the query value; empty for DifficultyAny.
func (d Difficulty) Wire() string {
	if !d.valid() {
		return ""
	}
	return difficultyTable[d].wire
}

func (d Difficulty) IsAny() bool { return d == DifficultyAny }

func (d Difficulty) String() string { return d.Label() }

// DifficultyFromLabel resolves a difficulty by label or wire value.
func DifficultyFromLabel(label string) (Difficulty, error) {
	if d, ok := lookupAxis(difficultyTable[:], label); ok {
		return Difficulty(d), nil
	}
	return DifficultyAny, &ConfigurationError{Axis: "difficulty", Label: label}
}

// DifficultyFromWire maps an upstream difficulty string back to its constant.
func DifficultyFromWire(wire string) (Difficulty, bool) {
	for i, e := range difficultyTable {
		if e.wire != "" && e.wire == wire {
			return Difficulty(i), true
		}
	}
	return DifficultyAny, false
}

// MustDifficulty panics on unknown labels.
func MustDifficulty(label string) Difficulty {
	d, err := DifficultyFromLabel(label)
	if err != nil {
		panic(err)
	}
	return d
}

// QuestionType filters questions by kind; TypeAny means no filter.
type QuestionType int

const (
	TypeAny QuestionType = iota
	TypeBoolean
	TypeMultiple
)

var typeTable = [...]axisEntry{
	TypeAny:      {"Any Type", ""},
	TypeBoolean:  {"True / False", "boolean"},
	TypeMultiple: {"Multiple Choice", "multiple"},
}

// Types returns every question type, TypeAny first.
func Types() []QuestionType {
	return []QuestionType{TypeAny, TypeBoolean, TypeMultiple}
}

func (t QuestionType) valid() bool { return t >= TypeAny && t <= TypeMultiple }

func (t QuestionType) Label() string {
	if !t.valid() {
		return fmt.Sprintf("QuestionType(%d)", int(t))
	}
	return typeTable[t].label
}

func (t QuestionType) Wire() string {
	if !t.valid() {
		return ""
	}
	return typeTable[t].wire
}

func (t QuestionType) IsAny() bool { return t == TypeAny }

func (t QuestionType) String() string { return t.Label() }

// TypeFromLabel resolves a question type by label or wire value.
func TypeFromLabel(label string) (QuestionType, error) {
	if t, ok := lookupAxis(typeTable[:], label); ok {
		return QuestionType(t), nil
	}
	return TypeAny, &ConfigurationError{Axis: "type", Label: label}
}

// TypeFromWire maps an upstream type string back to its constant.
func TypeFromWire(wire string) (QuestionType, bool) {
	for i, e := range typeTable {
		if e.wire != "" && e.wire == wire {
			return QuestionType(i), true
		}
	}
	return TypeAny, false
}

// MustType panics on unknown labels.
func MustType(label string) QuestionType {
	t, err := TypeFromLabel(label)
	if err != nil {
		panic(err)
	}
	return t
}

// lookupAxis is a linear, case-insensitive search over labels and wire values.
// Index 0 is always the "any" entry.
func lookupAxis(table []axisEntry, label string) (int, bool) {
	label = strings.TrimSpace(label)
	if label == "" || strings.EqualFold(label, "any") {
		return 0, true
	}
	for i, e := range table {
		if strings.EqualFold(e.label, label) || (e.wire != "" && strings.EqualFold(e.wire, label)) {
			return i, true
		}
	}
	return 0, false
}
