package tags

import (
	"fmt"
	"strings"

	"github.com/go-flac/flacvorbis"
	"github.com/go-flac/go-flac"
)

// flacBackend handles Vorbis comments of FLAC files.
type flacBackend struct{}

func (flacBackend) Read(path string) (Snapshot, error) {
	f, err := flac.ParseFile(path)
	if err != nil {
		return Snapshot{}, err
	}
	_, cmts, err := vorbisComments(f)
	if err != nil {
		return Snapshot{}, err
	}
	return commentProperties(cmts).snapshot(), nil
}

func (flacBackend) Write(path string, changes []Change) error {
	f, err := flac.ParseFile(path)
	if err != nil {
		return fmt.Errorf("parse file: %w", err)
	}
	idx, cmts, err := vorbisComments(f)
	if err != nil {
		return err
	}

	p := commentProperties(cmts)
	touched := p.apply(changes)

	// Keep untouched comments in place, then append the new values
	kept := cmts.Comments[:0:0]
	for _, comment := range cmts.Comments {
		if !hasCommentKey(comment, touched) {
			kept = append(kept, comment)
		}
	}
	cmts.Comments = kept
	for _, key := range touched {
		for _, value := range p[key] {
			if err := cmts.Add(key, value); err != nil {
				return fmt.Errorf("add %s: %w", strings.ToLower(key), err)
			}
		}
	}

	block := cmts.Marshal()
	if idx >= 0 {
		f.Meta[idx] = &block
	} else {
		f.Meta = append(f.Meta, &block)
	}

	if err := f.Save(path); err != nil {
		return fmt.Errorf("save file: %w", err)
	}
	return nil
}

// vorbisComments returns the index and content of the Vorbis comment block.
// A file without one gets an empty block and index -1.
func vorbisComments(f *flac.File) (int, *flacvorbis.MetaDataBlockVorbisComment, error) {
	for i, meta := range f.Meta {
		if meta.Type != flac.VorbisComment {
			continue
		}
		cmts, err := flacvorbis.ParseFromMetaDataBlock(*meta)
		if err != nil {
			return 0, nil, fmt.Errorf("parse vorbis comments: %w", err)
		}
		return i, cmts, nil
	}
	return -1, flacvorbis.New(), nil
}

// commentProperties indexes "KEY=value" comments by upper-cased key.
func commentProperties(cmts *flacvorbis.MetaDataBlockVorbisComment) properties {
	p := properties{}
	for _, comment := range cmts.Comments {
		key, value, ok := strings.Cut(comment, "=")
		if !ok || key == "" {
			continue
		}
		key = strings.ToUpper(key)
		p[key] = append(p[key], value)
	}
	return p
}

func hasCommentKey(comment string, keys []string) bool {
	key, _, _ := strings.Cut(comment, "=")
	for _, k := range keys {
		if strings.EqualFold(key, k) {
			return true
		}
	}
	return false
}
