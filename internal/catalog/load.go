package catalog

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/zeustriton/iso-42001-eval-madurez/internal/scoring"
)

//go:embed data/*.yaml
var dataFS embed.FS

const (
	isoFile        = "iso42001.yaml"
	regulationFile = "ds115.yaml"
	deadlinesFile  = "plazos.yaml"
	comparisonFile = "comparacion.yaml"
)

const deadlineDateLayout = "2006-01-02"

// Default returns the embedded catalog: the ISO 42001 questionnaire, the
// DS 115-2025-PCM questionnaire, the deadline table and the comparison table.
func Default() (*Catalog, error) {
	sub, err := fs.Sub(dataFS, "data")
	if err != nil {
		return nil, err
	}
	return load(sub)
}

// LoadDir loads a catalog from a directory holding the same file names as
// the embedded data. It exists so content can be swapped per jurisdiction or
// questionnaire version without rebuilding.
func LoadDir(dir string) (*Catalog, error) {
	return load(os.DirFS(dir))
}

func load(fsys fs.FS) (*Catalog, error) {
	cat := &Catalog{}

	var isoDoc, regDoc frameworkDoc
	if err := decodeStrict(fsys, isoFile, &isoDoc); err != nil {
		return nil, err
	}
	if err := decodeStrict(fsys, regulationFile, &regDoc); err != nil {
		return nil, err
	}
	cat.ISO = isoDoc.toFrameworkCatalog()
	cat.Regulation = regDoc.toFrameworkCatalog()

	var deadlineDoc deadlinesDoc
	if err := decodeStrict(fsys, deadlinesFile, &deadlineDoc); err != nil {
		return nil, err
	}
	types, err := deadlineDoc.toOrganizationTypes()
	if err != nil {
		return nil, err
	}
	cat.OrganizationTypes = types

	var cmpDoc comparisonDoc
	if err := decodeStrict(fsys, comparisonFile, &cmpDoc); err != nil {
		return nil, err
	}
	cat.Comparison = cmpDoc.toEntries()

	if err := cat.validate(); err != nil {
		return nil, err
	}
	return cat, nil
}

func decodeStrict(fsys fs.FS, name string, out interface{}) error {
	payload, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("read catalog file %s: %w", name, err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(payload))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("parse catalog file %s: %w", name, err)
	}
	return nil
}

// YAML document shapes. Kept separate from the exported model so the wire
// format can evolve without touching engine-facing types.

type optionYAML struct {
	Score       int    `yaml:"score"`
	Label       string `yaml:"label"`
	Explanation string `yaml:"explanation"`
}

type questionYAML struct {
	ID             string       `yaml:"id"`
	Section        string       `yaml:"section"`
	Text           string       `yaml:"text"`
	Description    string       `yaml:"description"`
	Options        []optionYAML `yaml:"options"`
	LegalReference string       `yaml:"legal_reference"`
}

type sectionYAML struct {
	ID          string `yaml:"id"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Color       string `yaml:"color"`
}

type bandYAML struct {
	Min         float64 `yaml:"min"`
	Max         float64 `yaml:"max"`
	Level       string  `yaml:"level"`
	Description string  `yaml:"description"`
	Action      string  `yaml:"action"`
}

type frameworkDoc struct {
	Framework       string            `yaml:"framework"`
	Sections        []sectionYAML     `yaml:"sections"`
	Bands           []bandYAML        `yaml:"bands"`
	Questions       []questionYAML    `yaml:"questions"`
	Recommendations map[string]string `yaml:"recommendations"`
}

func (d frameworkDoc) toFrameworkCatalog() FrameworkCatalog {
	fc := FrameworkCatalog{
		Framework:       d.Framework,
		Recommendations: d.Recommendations,
	}
	for _, s := range d.Sections {
		fc.Sections = append(fc.Sections, Section{ID: s.ID, Title: s.Title, Description: s.Description, Color: s.Color})
	}
	for _, b := range d.Bands {
		fc.Bands = append(fc.Bands, scoring.Band{Min: b.Min, Max: b.Max, Level: b.Level, Description: b.Description, Action: b.Action})
	}
	for _, q := range d.Questions {
		question := Question{
			ID:             q.ID,
			Section:        q.Section,
			Framework:      d.Framework,
			Text:           q.Text,
			Description:    q.Description,
			LegalReference: q.LegalReference,
		}
		for _, o := range q.Options {
			question.Options = append(question.Options, Option{Score: o.Score, Label: o.Label, Explanation: o.Explanation})
		}
		fc.Questions = append(fc.Questions, question)
	}
	return fc
}

type organizationTypeYAML struct {
	ID           string   `yaml:"id"`
	Name         string   `yaml:"name"`
	Description  string   `yaml:"description"`
	Deadline     string   `yaml:"deadline"`
	Priority     string   `yaml:"priority"`
	Requirements []string `yaml:"requirements"`
}

type deadlinesDoc struct {
	OrganizationTypes []organizationTypeYAML `yaml:"organization_types"`
}

func (d deadlinesDoc) toOrganizationTypes() ([]OrganizationType, error) {
	var out []OrganizationType
	for _, ot := range d.OrganizationTypes {
		parsed, err := time.Parse(deadlineDateLayout, ot.Deadline)
		if err != nil {
			return nil, fmt.Errorf("organization type %s: invalid deadline %q: %w", ot.ID, ot.Deadline, err)
		}
		out = append(out, OrganizationType{
			ID:           ot.ID,
			Name:         ot.Name,
			Description:  ot.Description,
			Deadline:     parsed.UTC(),
			Priority:     ot.Priority,
			Requirements: ot.Requirements,
		})
	}
	return out, nil
}

type comparisonSideYAML struct {
	Present     bool   `yaml:"present"`
	Description string `yaml:"description"`
	Reference   string `yaml:"reference"`
}

type comparisonEntryYAML struct {
	Requirement        string             `yaml:"requirement"`
	ISO42001           comparisonSideYAML `yaml:"iso42001"`
	PeruvianRegulation comparisonSideYAML `yaml:"peruvian_regulation"`
	Alignment          string             `yaml:"alignment"`
	Notes              string             `yaml:"notes"`
}

type comparisonDoc struct {
	Entries []comparisonEntryYAML `yaml:"entries"`
}

func (d comparisonDoc) toEntries() []ComparisonEntry {
	var out []ComparisonEntry
	for _, e := range d.Entries {
		out = append(out, ComparisonEntry{
			Requirement:        e.Requirement,
			ISO42001:           ComparisonSide(e.ISO42001),
			PeruvianRegulation: ComparisonSide(e.PeruvianRegulation),
			Alignment:          e.Alignment,
			Notes:              e.Notes,
		})
	}
	return out
}
