package fileserv

import (
	"flag"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/BinaryMelodies/msbasic-savefile-re/detok"
	"github.com/BinaryMelodies/msbasic-savefile-re/filelist"
)

// command line flag telling where the save files live
var srcDir = flag.String("dir", "./source", "directory holding BASIC save files")

// fileSource decodes listings out of one file store
type fileSource struct {
	src http.FileSystem
}

// WrapListingSource builds mux routes over the save-file directory:
// a JSON index of the files present and a route that decodes one of
// them on demand.
func WrapListingSource(rtr *mux.Router) {
	fs := &fileSource{src: http.Dir(*srcDir)}

	rtr.HandleFunc("/files", fs.serveIndex).Name("files")
	rtr.HandleFunc("/listing/{file}", fs.serveListing).Name("listing")
}

// containsDotFile reports whether name has a path element starting
// with a period
func containsDotFile(name string) bool {
	parts := strings.Split(name, "/")
	for _, part := range parts {
		if strings.HasPrefix(part, ".") {
			return true
		}
	}

	return false
}

// serveIndex sends the JSON list of save files with detected formats
func (fs *fileSource) serveIndex(w http.ResponseWriter, r *http.Request) {
	dir, err := fs.src.Open("/")

	if err != nil {
		http.Error(w, "404 page not found", http.StatusNotFound)
		return
	}
	defer dir.Close()

	fis, err := dir.Readdir(-1)

	if err != nil {
		http.Error(w, "403 Forbidden", http.StatusForbidden)
		return
	}

	fl := filelist.NewFileList()
	for _, fi := range fis {
		if fi.IsDir() || containsDotFile(fi.Name()) {
			continue
		}

		marker, err := fs.readMarker(fi.Name())

		if err != nil {
			continue
		}

		fl.AddFile(fi.Name(), marker)
	}
	fl.Sort()

	jsn := fl.JSON()
	if jsn == nil {
		jsn = []byte("[]")
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(jsn)
}

// readMarker pulls the format marker byte off the front of a file
func (fs *fileSource) readMarker(name string) (byte, error) {
	fl, err := fs.src.Open(name)

	if err != nil {
		return 0, err
	}
	defer fl.Close()

	bt := make([]byte, 1)
	if _, err := io.ReadFull(fl, bt); err != nil {
		return 0, err
	}

	return bt[0], nil
}

// serveListing decodes one save file and sends the text
func (fs *fileSource) serveListing(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["file"]

	if containsDotFile(name) {
		http.Error(w, "403 Forbidden", http.StatusForbidden)
		return
	}

	fl, err := fs.src.Open(name)

	if err != nil {
		http.Error(w, "404 page not found", http.StatusNotFound)
		return
	}
	defer fl.Close()

	src, err := io.ReadAll(fl)

	if err != nil {
		http.Error(w, "403 Forbidden", http.StatusForbidden)
		return
	}

	lst, err := detok.Decode(src)

	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	for _, warn := range lst.Warnings() {
		w.Header().Add("Warning", fmt.Sprintf("199 - %q", warn))
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	io.WriteString(w, lst.Text())
}
