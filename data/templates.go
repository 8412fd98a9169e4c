package data

import (
	"encoding/json"
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"ebiten-dungeon/generation"
)

// PrefabTemplate describes the entity a prefab hint turns into
type PrefabTemplate struct {
	ID         string   `json:"id"`         // Prefab hint this template answers to
	Name       string   `json:"name"`       // Display name
	Glyph      string   `json:"glyph"`      // Single character drawn by the renderer
	Color      string   `json:"color"`      // Color in hex format (e.g. "#00FF00")
	Scale      float32  `json:"scale"`      // Marker size relative to a tile
	Tags       []string `json:"tags"`       // Extra entity tags (e.g. "boss")
	BlocksPath bool     `json:"blocksPath"` // Whether it blocks movement
}

// GlyphRune returns the first rune of the glyph, or '?' when it is empty
func (t *PrefabTemplate) GlyphRune() rune {
	for _, r := range t.Glyph {
		return r
	}
	return '?'
}

// PrefabTemplateManager maps prefab hints to templates
type PrefabTemplateManager struct {
	Templates map[string]*PrefabTemplate
}

// NewPrefabTemplateManager creates a manager preloaded with the built-in prefabs
func NewPrefabTemplateManager() *PrefabTemplateManager {
	m := &PrefabTemplateManager{
		Templates: make(map[string]*PrefabTemplate),
	}
	for _, t := range defaultTemplates() {
		m.Templates[t.ID] = t
	}
	return m
}

func defaultTemplates() []*PrefabTemplate {
	return []*PrefabTemplate{
		{ID: generation.PrefabNormalEnemy, Name: "Enemy", Glyph: "e", Color: "#ff0000", Scale: 0.75, BlocksPath: true},
		{ID: generation.PrefabBossEnemy, Name: "Boss", Glyph: "B", Color: "#b00000", Scale: 1, Tags: []string{"boss"}, BlocksPath: true},
		{ID: generation.PrefabTreasureChest, Name: "Treasure Chest", Glyph: "$", Color: "#ffff00", Scale: 0.75},
	}
}

// LoadTemplatesFromDirectory loads every JSON template file in a directory.
// Templates with an existing ID replace the built-in ones.
func (m *PrefabTemplateManager) LoadTemplatesFromDirectory(dirPath string) error {
	files, err := os.ReadDir(dirPath)
	if err != nil {
		return fmt.Errorf("failed to read template directory: %w", err)
	}

	for _, file := range files {
		if file.IsDir() || filepath.Ext(file.Name()) != ".json" {
			continue
		}

		fullPath := filepath.Join(dirPath, file.Name())
		if err := m.LoadTemplateFromFile(fullPath); err != nil {
			return fmt.Errorf("failed to load template from %s: %w", file.Name(), err)
		}
	}

	return nil
}

// LoadTemplateFromFile loads a single template from a JSON file
func (m *PrefabTemplateManager) LoadTemplateFromFile(filePath string) error {
	raw, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}

	var template PrefabTemplate
	if err := json.Unmarshal(raw, &template); err != nil {
		return err
	}

	if template.ID == "" {
		return fmt.Errorf("template ID cannot be empty: %s", filePath)
	}
	if template.Scale <= 0 || template.Scale > 1 {
		template.Scale = 1
	}

	m.Templates[template.ID] = &template
	return nil
}

// GetTemplate returns a template by prefab hint
func (m *PrefabTemplateManager) GetTemplate(id string) (*PrefabTemplate, bool) {
	template, ok := m.Templates[id]
	return template, ok
}

// ParseHexColor converts a hex string to a color.RGBA
func ParseHexColor(hex string) (c color.RGBA) {
	c.A = 0xff

	if len(hex) < 7 {
		return color.RGBA{255, 255, 255, 255}
	}

	if _, err := fmt.Sscanf(hex, "#%02x%02x%02x", &c.R, &c.G, &c.B); err != nil {
		return color.RGBA{255, 255, 255, 255} // Default white on error
	}

	return c
}
