package toml

import "fmt"

const currentSchemaVersion = 1

type fileSchema struct {
	Version  int           `toml:"version"`
	Users    []ownerSchema `toml:"users"`
	Entities []ownerSchema `toml:"entities"`
}

type ownerSchema struct {
	ID    string            `toml:"id"`
	Flags map[string]string `toml:"flags"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported flags schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

func upsertFlag(owners []ownerSchema, id, key, value string) []ownerSchema {
	for i := range owners {
		if owners[i].ID != id {
			continue
		}
		if owners[i].Flags == nil {
			owners[i].Flags = map[string]string{}
		}
		owners[i].Flags[key] = value
		return owners
	}

	return append(owners, ownerSchema{ID: id, Flags: map[string]string{key: value}})
}

func lookupFlag(owners []ownerSchema, id, key string) string {
	for _, owner := range owners {
		if owner.ID == id {
			return owner.Flags[key]
		}
	}
	return ""
}
