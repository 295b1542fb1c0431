// Package action maps menu action identifiers to calls on the editor's
// controllers. Identifiers such as "file.save" are the only contract between
// the menu configuration and the controller layer; inside the program they
// are parsed once into a Kind.
package action

// Kind enumerates every action the menu bar can trigger.
type Kind int

const (
	Unknown Kind = iota

	FileNew
	FileClose
	FileSave
	FileSaveAs
	FileOpen
	FilePublish
	FilePublishSettings

	ViewFile
	ViewFileResponsize
	ViewOpenFileExplorer
	ViewOpenCSSEditor
	ViewOpenJSEditor
	ViewOpenHTMLHeadEditor
	ViewOpenEditor

	ToolsAdvancedActivate
	ToolsPixlrExpress
	ToolsPixlrEdit

	InsertPage
	InsertText
	InsertHTML
	InsertImage
	InsertContainer

	EditDeleteSelection
	EditCopySelection
	EditPasteSelection
	EditUndo
	EditRedo
	EditMoveUp
	EditMoveDown
	EditMoveToTop
	EditMoveToBottom
	EditDeletePage
	EditRenamePage

	HelpAbout
	HelpIssues
	HelpDownloadsWidget
	HelpDownloadsTemplate
	HelpAboutSilexLabs
	HelpNewsLetter
	HelpGooglePlus
	HelpTwitter
	HelpFacebook
	HelpForkMe
	HelpContribute
	HelpContributors

	kindCount
)

var identifiers = [kindCount]string{
	Unknown: "",

	FileNew:             "file.new",
	FileClose:           "file.close",
	FileSave:            "file.save",
	FileSaveAs:          "file.saveas",
	FileOpen:            "file.open",
	FilePublish:         "file.publish",
	FilePublishSettings: "file.publish.settings",

	ViewFile:               "view.file",
	ViewFileResponsize:     "view.file.responsize",
	ViewOpenFileExplorer:   "view.open.fileExplorer",
	ViewOpenCSSEditor:      "view.open.cssEditor",
	ViewOpenJSEditor:       "view.open.jsEditor",
	ViewOpenHTMLHeadEditor: "view.open.htmlHeadEditor",
	ViewOpenEditor:         "view.open.editor",

	ToolsAdvancedActivate: "tools.advanced.activate",
	ToolsPixlrExpress:     "tools.pixlr.express",
	ToolsPixlrEdit:        "tools.pixlr.edit",

	InsertPage:      "insert.page",
	InsertText:      "insert.text",
	InsertHTML:      "insert.html",
	InsertImage:     "insert.image",
	InsertContainer: "insert.container",

	EditDeleteSelection: "edit.delete.selection",
	EditCopySelection:   "edit.copy.selection",
	EditPasteSelection:  "edit.paste.selection",
	EditUndo:            "edit.undo",
	EditRedo:            "edit.redo",
	EditMoveUp:          "edit.move.up",
	EditMoveDown:        "edit.move.down",
	EditMoveToTop:       "edit.move.to.top",
	EditMoveToBottom:    "edit.move.to.bottom",
	EditDeletePage:      "edit.delete.page",
	EditRenamePage:      "edit.rename.page",

	HelpAbout:             "help.about",
	HelpIssues:            "help.issues",
	HelpDownloadsWidget:   "help.downloads.widget",
	HelpDownloadsTemplate: "help.downloads.template",
	HelpAboutSilexLabs:    "help.aboutSilexLabs",
	HelpNewsLetter:        "help.newsLetter",
	HelpGooglePlus:        "help.googlPlus",
	HelpTwitter:           "help.twitter",
	HelpFacebook:          "help.facebook",
	HelpForkMe:            "help.forkMe",
	HelpContribute:        "help.contribute",
	HelpContributors:      "help.contributors",
}

var byIdentifier = func() map[string]Kind {
	m := make(map[string]Kind, kindCount)
	for k := Unknown + 1; k < kindCount; k++ {
		m[identifiers[k]] = k
	}
	return m
}()

// Parse returns the Kind for an action identifier. Unknown identifiers
// yield (Unknown, false).
func Parse(id string) (Kind, bool) {
	k, ok := byIdentifier[id]
	return k, ok
}

// Known reports whether id names an action.
func Known(id string) bool {
	_, ok := byIdentifier[id]
	return ok
}

// String returns the dot-namespaced identifier.
func (k Kind) String() string {
	if k <= Unknown || k >= kindCount {
		return "unknown"
	}
	return identifiers[k]
}

// IsHelp reports whether the action opens an external help link.
func (k Kind) IsHelp() bool {
	return k >= HelpAbout && k <= HelpContributors
}

// All returns every known Kind in declaration order.
func All() []Kind {
	kinds := make([]Kind, 0, kindCount-1)
	for k := Unknown + 1; k < kindCount; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}
