package action

import (
	"errors"
	"fmt"
	"strings"
)

// ElementType is the kind of element the insert controller adds to a page.
type ElementType string

const (
	ElementText      ElementType = "text"
	ElementHTML      ElementType = "html"
	ElementImage     ElementType = "image"
	ElementContainer ElementType = "container"
)

// FileActions creates, opens, saves and publishes the edited site.
type FileActions interface {
	NewFile()
	OpenFile()
	// Save writes the file to url, or asks for a destination when url is empty.
	Save(url string)
	Publish()
}

// SettingsDialog shows the publish settings.
type SettingsDialog interface {
	OpenPublishSettings()
}

// Workspace lays out the editor panes.
type Workspace interface {
	Redraw()
}

// ViewActions previews the site and opens the side editors.
type ViewActions interface {
	Preview()
	PreviewResponsize()
	OpenFileExplorer(onSelect func(url string), onError func(err error))
	OpenCSSEditor()
	OpenJSEditor()
	OpenHTMLHeadEditor()
}

// EditActions works on the current selection and the history.
type EditActions interface {
	EditElement()
	RemoveSelectedElements()
	CopySelection()
	PasteSelection()
	Undo()
	Redo()
	MoveUp()
	MoveDown()
	MoveToTop()
	MoveToBottom()
}

// InsertActions adds pages and elements.
type InsertActions interface {
	CreatePage()
	AddElement(t ElementType)
	BrowseAndAddImage()
}

// ToolActions toggles editor modes and opens image tools.
type ToolActions interface {
	ToggleAdvanced()
	PixlrExpress()
	PixlrEdit()
}

// PageActions manages the pages of the site.
type PageActions interface {
	RemovePage()
	RenamePage()
}

// URLOpener opens an external link, usually in the system browser.
type URLOpener interface {
	Open(url string) error
}

// Model is the read-only view of the edited document the dispatcher needs.
type Model interface {
	FileURL() string
}

// Controllers groups the capabilities the dispatcher routes actions to.
type Controllers struct {
	File      FileActions
	Settings  SettingsDialog
	Workspace Workspace
	View      ViewActions
	Edit      EditActions
	Insert    InsertActions
	Tools     ToolActions
	Page      PageActions
	Links     URLOpener
}

// ErrMissingController is returned when a capability of Controllers is nil.
var ErrMissingController = errors.New("missing controller")

func (c Controllers) validate() error {
	var missing []string
	check := func(name string, isNil bool) {
		if isNil {
			missing = append(missing, name)
		}
	}
	check("file", c.File == nil)
	check("settings", c.Settings == nil)
	check("workspace", c.Workspace == nil)
	check("view", c.View == nil)
	check("edit", c.Edit == nil)
	check("insert", c.Insert == nil)
	check("tools", c.Tools == nil)
	check("page", c.Page == nil)
	check("links", c.Links == nil)

	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingController, strings.Join(missing, ", "))
	}
	return nil
}
