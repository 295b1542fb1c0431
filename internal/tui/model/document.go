package model

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"
)

var (
	// ErrNoSelection is returned by operations that need selected elements.
	ErrNoSelection = errors.New("no element selected")
	// ErrLastPage is returned when removing the only page of a site.
	ErrLastPage = errors.New("cannot remove the last page")
	// ErrPageExists is returned when a page name is already taken.
	ErrPageExists = errors.New("page already exists")
	// ErrNothingToUndo and ErrNothingToRedo report an empty history.
	ErrNothingToUndo = errors.New("nothing to undo")
	ErrNothingToRedo = errors.New("nothing to redo")
	// ErrEmptyClipboard is returned by Paste before anything was copied.
	ErrEmptyClipboard = errors.New("clipboard is empty")
)

// Element is a node of a page. Elements of a page are kept in stacking
// order, the last one is drawn on top.
type Element struct {
	ID   string
	Type string
	Src  string
}

// State is an immutable copy of the document.
type State struct {
	FileURL     string
	Pages       []string
	CurrentPage string
	Elements    []Element
	Selection   []Element
	Advanced    bool
	Dirty       bool
	HTMLHead    string
	CSS         string
	JS          string
}

type snapshot struct {
	fileURL  string
	pages    []string
	current  string
	elements map[string][]Element
	selected []string
	head     string
	css      string
	js       string
}

func (s snapshot) clone() snapshot {
	c := s
	c.pages = slices.Clone(s.pages)
	c.selected = slices.Clone(s.selected)
	c.elements = make(map[string][]Element, len(s.elements))
	for page, els := range s.elements {
		c.elements[page] = slices.Clone(els)
	}
	return c
}

// Document is the in-memory site being edited: its pages, the elements of
// each page, the selection and the undo history.
type Document struct {
	mu sync.RWMutex

	doc       snapshot
	undo      []snapshot
	redo      []snapshot
	clipboard []Element
	advanced  bool
	dirty     bool

	refreshCh chan struct{}
}

// NewDocument creates an empty site with a single page.
func NewDocument() *Document {
	d := &Document{refreshCh: make(chan struct{}, 1)}
	d.doc = blank()
	return d
}

func blank() snapshot {
	return snapshot{
		pages:    []string{"page-1"},
		current:  "page-1",
		elements: map[string][]Element{"page-1": nil},
	}
}

// RefreshCh returns the channel that signals state changes.
func (d *Document) RefreshCh() <-chan struct{} {
	return d.refreshCh
}

func (d *Document) signalRefresh() {
	select {
	case d.refreshCh <- struct{}{}:
	default:
	}
}

// FileURL returns the location the site was last opened from or saved to.
func (d *Document) FileURL() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.doc.fileURL
}

// State returns a copy of the current document.
func (d *Document) State() State {
	d.mu.RLock()
	defer d.mu.RUnlock()

	els := slices.Clone(d.doc.elements[d.doc.current])
	var sel []Element
	for _, e := range els {
		if slices.Contains(d.doc.selected, e.ID) {
			sel = append(sel, e)
		}
	}
	return State{
		FileURL:     d.doc.fileURL,
		Pages:       slices.Clone(d.doc.pages),
		CurrentPage: d.doc.current,
		Elements:    els,
		Selection:   sel,
		Advanced:    d.advanced,
		Dirty:       d.dirty,
		HTMLHead:    d.doc.head,
		CSS:         d.doc.css,
		JS:          d.doc.js,
	}
}

// mutate runs fn on a copy of the document and commits it with an undo
// entry when fn succeeds.
func (d *Document) mutate(fn func(s *snapshot) error) error {
	d.mu.Lock()
	next := d.doc.clone()
	if err := fn(&next); err != nil {
		d.mu.Unlock()
		return err
	}
	d.undo = append(d.undo, d.doc)
	d.redo = nil
	d.doc = next
	d.dirty = true
	d.mu.Unlock()
	d.signalRefresh()
	return nil
}

// Reset replaces the document with an empty site at url and clears history.
func (d *Document) Reset(url string) {
	d.mu.Lock()
	d.doc = blank()
	d.doc.fileURL = url
	d.undo, d.redo = nil, nil
	d.dirty = false
	d.mu.Unlock()
	d.signalRefresh()
}

// MarkSaved records url as the file location and clears the dirty flag.
func (d *Document) MarkSaved(url string) {
	d.mu.Lock()
	d.doc.fileURL = url
	d.dirty = false
	d.mu.Unlock()
	d.signalRefresh()
}

// AddPage appends a page and makes it current.
func (d *Document) AddPage(name string) error {
	return d.mutate(func(s *snapshot) error {
		if slices.Contains(s.pages, name) {
			return fmt.Errorf("%w: %s", ErrPageExists, name)
		}
		s.pages = append(s.pages, name)
		s.elements[name] = nil
		s.current = name
		s.selected = nil
		return nil
	})
}

// OpenPage makes name the current page.
func (d *Document) OpenPage(name string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !slices.Contains(d.doc.pages, name) {
		return fmt.Errorf("page %q not found", name)
	}
	d.doc.current = name
	d.doc.selected = nil
	d.signalRefresh()
	return nil
}

// RemovePage removes the current page and opens the first remaining one.
func (d *Document) RemovePage() error {
	return d.mutate(func(s *snapshot) error {
		if len(s.pages) <= 1 {
			return ErrLastPage
		}
		s.pages = slices.DeleteFunc(s.pages, func(p string) bool { return p == s.current })
		delete(s.elements, s.current)
		s.current = s.pages[0]
		s.selected = nil
		return nil
	})
}

// RenamePage renames the current page.
func (d *Document) RenamePage(name string) error {
	return d.mutate(func(s *snapshot) error {
		if name == s.current {
			return nil
		}
		if slices.Contains(s.pages, name) {
			return fmt.Errorf("%w: %s", ErrPageExists, name)
		}
		i := slices.Index(s.pages, s.current)
		s.pages[i] = name
		s.elements[name] = s.elements[s.current]
		delete(s.elements, s.current)
		s.current = name
		return nil
	})
}

// AddElement adds an element of type typ on top of the current page and
// selects it.
func (d *Document) AddElement(typ, src string) (Element, error) {
	e := Element{ID: uuid.NewString()[:8], Type: typ, Src: src}
	err := d.mutate(func(s *snapshot) error {
		s.elements[s.current] = append(s.elements[s.current], e)
		s.selected = []string{e.ID}
		return nil
	})
	return e, err
}

// Select replaces the selection with the given element ids of the current page.
func (d *Document) Select(ids ...string) {
	d.mu.Lock()
	d.doc.selected = nil
	for _, e := range d.doc.elements[d.doc.current] {
		if slices.Contains(ids, e.ID) {
			d.doc.selected = append(d.doc.selected, e.ID)
		}
	}
	d.mu.Unlock()
	d.signalRefresh()
}

// RemoveSelected deletes the selected elements.
func (d *Document) RemoveSelected() error {
	return d.mutate(func(s *snapshot) error {
		if len(s.selected) == 0 {
			return ErrNoSelection
		}
		s.elements[s.current] = slices.DeleteFunc(s.elements[s.current], func(e Element) bool {
			return slices.Contains(s.selected, e.ID)
		})
		s.selected = nil
		return nil
	})
}

// Copy puts the selected elements on the clipboard.
func (d *Document) Copy() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	var copied []Element
	for _, e := range d.doc.elements[d.doc.current] {
		if slices.Contains(d.doc.selected, e.ID) {
			copied = append(copied, e)
		}
	}
	if len(copied) == 0 {
		return ErrNoSelection
	}
	d.clipboard = copied
	return nil
}

// Paste adds copies of the clipboard on top of the current page and selects them.
func (d *Document) Paste() error {
	d.mu.RLock()
	clip := slices.Clone(d.clipboard)
	d.mu.RUnlock()
	if len(clip) == 0 {
		return ErrEmptyClipboard
	}
	return d.mutate(func(s *snapshot) error {
		s.selected = nil
		for _, e := range clip {
			e.ID = uuid.NewString()[:8]
			s.elements[s.current] = append(s.elements[s.current], e)
			s.selected = append(s.selected, e.ID)
		}
		return nil
	})
}

// Move direction for MoveSelection.
type Move int

const (
	MoveUp Move = iota
	MoveDown
	MoveToTop
	MoveToBottom
)

// MoveSelection changes the stacking order of the selected elements.
func (d *Document) MoveSelection(m Move) error {
	return d.mutate(func(s *snapshot) error {
		if len(s.selected) == 0 {
			return ErrNoSelection
		}
		els := s.elements[s.current]
		isSel := func(e Element) bool { return slices.Contains(s.selected, e.ID) }

		switch m {
		case MoveUp:
			for i := len(els) - 2; i >= 0; i-- {
				if isSel(els[i]) && !isSel(els[i+1]) {
					els[i], els[i+1] = els[i+1], els[i]
				}
			}
		case MoveDown:
			for i := 1; i < len(els); i++ {
				if isSel(els[i]) && !isSel(els[i-1]) {
					els[i], els[i-1] = els[i-1], els[i]
				}
			}
		case MoveToTop, MoveToBottom:
			var sel, rest []Element
			for _, e := range els {
				if isSel(e) {
					sel = append(sel, e)
				} else {
					rest = append(rest, e)
				}
			}
			if m == MoveToTop {
				els = append(rest, sel...)
			} else {
				els = append(sel, rest...)
			}
		}
		s.elements[s.current] = els
		return nil
	})
}

// Undo restores the state before the last change.
func (d *Document) Undo() error {
	d.mu.Lock()
	if len(d.undo) == 0 {
		d.mu.Unlock()
		return ErrNothingToUndo
	}
	prev := d.undo[len(d.undo)-1]
	d.undo = d.undo[:len(d.undo)-1]
	d.redo = append(d.redo, d.doc)
	d.doc = prev
	d.dirty = true
	d.mu.Unlock()
	d.signalRefresh()
	return nil
}

// Redo re-applies the last undone change.
func (d *Document) Redo() error {
	d.mu.Lock()
	if len(d.redo) == 0 {
		d.mu.Unlock()
		return ErrNothingToRedo
	}
	next := d.redo[len(d.redo)-1]
	d.redo = d.redo[:len(d.redo)-1]
	d.undo = append(d.undo, d.doc)
	d.doc = next
	d.dirty = true
	d.mu.Unlock()
	d.signalRefresh()
	return nil
}

// ToggleAdvanced flips the advanced tools flag and returns the new value.
func (d *Document) ToggleAdvanced() bool {
	d.mu.Lock()
	d.advanced = !d.advanced
	v := d.advanced
	d.mu.Unlock()
	d.signalRefresh()
	return v
}

// Code identifies one of the site-wide code blocks.
type Code int

const (
	CodeHTMLHead Code = iota
	CodeCSS
	CodeJS
)

// SetCode replaces a site-wide code block.
func (d *Document) SetCode(c Code, text string) error {
	return d.mutate(func(s *snapshot) error {
		switch c {
		case CodeHTMLHead:
			s.head = text
		case CodeCSS:
			s.css = text
		case CodeJS:
			s.js = text
		default:
			return fmt.Errorf("unknown code block %d", c)
		}
		return nil
	})
}
