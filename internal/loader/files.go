package loader

import (
	"fmt"
	"os"

	"github.com/roach88/ralint/internal/asset"
	"github.com/roach88/ralint/internal/notes"
)

// Inputs is everything a lint run reads. Paths left empty are not loaded.
type Inputs struct {
	NotesPath string
	SetPath   string
	LocalPath string
	RichPath  string
}

// Bundle is the loaded form of Inputs. Set is never nil; Rich is nil when no
// script was given.
type Bundle struct {
	Set   *asset.Set
	Notes []notes.Note
	Rich  *asset.RichPresence
}

// Load reads every configured input. Notes from a local file are appended
// after the exported notes so they take precedence on overlap.
func Load(in Inputs) (*Bundle, error) {
	b := &Bundle{Set: &asset.Set{}}

	if in.NotesPath != "" {
		err := withFile(in.NotesPath, func(f *os.File) (err error) {
			b.Notes, err = LoadCodeNotes(f)
			return err
		})
		if err != nil {
			return nil, err
		}
	}

	if in.SetPath != "" {
		err := withFile(in.SetPath, func(f *os.File) (err error) {
			b.Set, err = LoadSet(f)
			return err
		})
		if err != nil {
			return nil, err
		}
	}

	if in.LocalPath != "" {
		err := withFile(in.LocalPath, func(f *os.File) error {
			local, localNotes, err := LoadLocal(f)
			if err != nil {
				return err
			}
			mergeLocal(b.Set, local)
			b.Notes = append(b.Notes, localNotes...)
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	if in.RichPath != "" {
		err := withFile(in.RichPath, func(f *os.File) (err error) {
			b.Rich, err = LoadRichPresence(f)
			return err
		})
		if err != nil {
			return nil, err
		}
	}
	return b, nil
}

// mergeLocal layers local assets over the exported set. Local edits replace
// published assets with the same ID.
func mergeLocal(dst, local *asset.Set) {
	if dst.Title == "" {
		dst.Title = local.Title
	}
	for _, a := range local.Achievements {
		dst.AddAchievement(a)
	}
	for _, lb := range local.Leaderboards {
		dst.AddLeaderboard(lb)
	}
}

func withFile(path string, fn func(*os.File) error) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	if err := fn(f); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}
