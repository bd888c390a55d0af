package filelist

import (
	"encoding/json"
	"sort"

	"github.com/BinaryMelodies/msbasic-savefile-re/detok"
)

// fileEntry holds what the index route reports about one save file
type fileEntry struct {
	Name      string `json:"name"`
	Format    string `json:"format"`
	Supported bool   `json:"supported"`
}

// FileList holds the array of entries
type FileList struct {
	Files []fileEntry
}

// NewFileList builds a new, empty list
func NewFileList() *FileList {
	return &FileList{}
}

// AddFile records a file under the format its marker byte names
func (fl *FileList) AddFile(name string, marker byte) {
	nf := fileEntry{
		Name:      name,
		Format:    detok.FormatName(marker),
		Supported: detok.Supported(marker),
	}
	fl.Files = append(fl.Files, nf)
}

// Sort orders the entries by filename
func (fl *FileList) Sort() {
	sort.Slice(fl.Files, func(i, j int) bool {
		return fl.Files[i].Name < fl.Files[j].Name
	})
}

// JSON returns the file list formatted for the index route
func (fl *FileList) JSON() []byte {
	if len(fl.Files) == 0 {
		return nil
	}

	res, _ := json.Marshal(fl.Files)
	return res
}
