package tags

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/bogem/id3v2/v2"
	"go.senan.xyz/taglib"
)

// id3Frames maps text fields to their ID3v2 frame. The year frame depends
// on the tag version and comments use COMM frames.
var id3Frames = map[string]string{
	"title":  "TIT2",
	"artist": "TPE1",
	"album":  "TALB",
	"genre":  "TCON",
	"track":  "TRCK",
}

// mp3Backend handles ID3v2 tags of MP3 files.
type mp3Backend struct{}

func (mp3Backend) Read(path string) (Snapshot, error) {
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if errors.Is(err, id3v2.ErrUnsupportedVersion) {
		// TagLib still reads ID3v2.2; the next write upgrades the tag
		return TaglibBackend{}.Read(path)
	}
	if err != nil {
		return Snapshot{}, err
	}
	defer tag.Close()

	p := properties{}
	for name, id := range id3Frames {
		p[propertyKeys[name]] = []string{getID3TextFrame(tag, id)}
	}
	date := getID3TextFrame(tag, "TDRC")
	if date == "" {
		date = getID3TextFrame(tag, "TYER")
	}
	p[taglib.Date] = []string{date}
	p[taglib.Comment] = []string{getID3Comment(tag)}
	return p.snapshot(), nil
}

func (mp3Backend) Write(path string, changes []Change) error {
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if errors.Is(err, id3v2.ErrUnsupportedVersion) {
		// ID3v2.2 or older tags are replaced by a new tag holding every
		// field of the old one, with the changes on top.
		changes, err = upgradeID3v22(path, changes)
		if err != nil {
			return err
		}
		tag, err = id3v2.Open(path, id3v2.Options{Parse: true})
	}
	if err != nil {
		return fmt.Errorf("open file: %w", err)
	}
	defer tag.Close()

	// UTF-8 text is only defined from ID3v2.4 on
	enc := id3v2.EncodingUTF8
	if tag.Version() < 4 {
		enc = id3v2.EncodingUTF16
	}
	tag.SetDefaultEncoding(enc)

	for _, c := range changes {
		switch c.Name {
		case "comment":
			tag.DeleteFrames("COMM")
			if !c.Clears() {
				tag.AddCommentFrame(id3v2.CommentFrame{
					Encoding: enc,
					Language: "eng",
					Text:     c.Value,
				})
			}
		case "year":
			tag.DeleteFrames("TDRC")
			tag.DeleteFrames("TYER")
			if !c.Clears() {
				frame := "TDRC"
				if tag.Version() < 4 {
					frame = "TYER"
				}
				tag.AddTextFrame(frame, enc, c.Value)
			}
		case "track":
			_, total := parseNumberPair(getID3TextFrame(tag, "TRCK"))
			tag.DeleteFrames("TRCK")
			if !c.Clears() {
				value := c.Value
				if total > 0 {
					value += "/" + strconv.Itoa(total)
				}
				tag.AddTextFrame("TRCK", enc, value)
			}
		default:
			id, ok := id3Frames[c.Name]
			if !ok {
				continue
			}
			tag.DeleteFrames(id)
			if !c.Clears() {
				tag.AddTextFrame(id, enc, c.Value)
			}
		}
	}

	if err := tag.Save(); err != nil {
		return fmt.Errorf("save tags: %w", err)
	}
	return nil
}

// getID3TextFrame reads a text frame value from an ID3v2 tag.
func getID3TextFrame(tag *id3v2.Tag, frameID string) string {
	frames := tag.GetFrames(frameID)
	if len(frames) == 0 {
		return ""
	}
	if tf, ok := frames[0].(id3v2.TextFrame); ok {
		return tf.Text
	}
	return ""
}

// getID3Comment returns the first comment, preferring one without description.
func getID3Comment(tag *id3v2.Tag) string {
	var first string
	for _, frame := range tag.GetFrames("COMM") {
		cf, ok := frame.(id3v2.CommentFrame)
		if !ok {
			continue
		}
		if cf.Description == "" {
			return cf.Text
		}
		if first == "" {
			first = cf.Text
		}
	}
	return first
}

// upgradeID3v22 reads the old tag through TagLib, strips it and returns the
// changes that rebuild it with the given changes applied.
func upgradeID3v22(path string, changes []Change) ([]Change, error) {
	current, err := TaglibBackend{}.Read(path)
	if err != nil {
		return nil, fmt.Errorf("read ID3v2.2 tag: %w", err)
	}
	next, err := current.With(changes)
	if err != nil {
		return nil, err
	}
	if err := stripID3v2Tag(path); err != nil {
		return nil, fmt.Errorf("strip unsupported ID3v2.2 tag: %w", err)
	}
	return Diff(Snapshot{}, next), nil
}

// stripID3v2Tag removes ID3v2 tags from an MP3 file.
// This is used to handle ID3v2.2 tags which the id3v2 library doesn't support.
func stripID3v2Tag(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}

	if len(data) < 10 || string(data[:3]) != id3Magic {
		return nil
	}

	// Tag size is a synchsafe integer: 7 bits per byte
	size := int(data[6])<<21 | int(data[7])<<14 | int(data[8])<<7 | int(data[9])
	tagSize := size + 10
	if data[5]&0x10 != 0 {
		tagSize += 10 // footer
	}

	if tagSize >= len(data) {
		return fmt.Errorf("ID3v2 tag size (%d) exceeds file size (%d)", tagSize, len(data))
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat file: %w", err)
	}
	if err := os.WriteFile(path, data[tagSize:], info.Mode()); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}
