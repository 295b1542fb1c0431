package action

// DefaultHelpLinks are the pages opened by the Help menu.
var DefaultHelpLinks = map[Kind]string{
	HelpAbout:             "http://www.silex.me/",
	HelpIssues:            "https://github.com/silexlabs/Silex/issues?state=open",
	HelpDownloadsWidget:   "http://www.silexlabs.org/silex/widgets/",
	HelpDownloadsTemplate: "http://www.silexlabs.org/silex/templates/",
	HelpAboutSilexLabs:    "http://www.silexlabs.org/silexlabs/",
	HelpNewsLetter:        "http://eepurl.com/F48q5",
	HelpGooglePlus:        "https://plus.google.com/communities/107373636457908189681",
	HelpTwitter:           "http://twitter.com/silexlabs",
	HelpFacebook:          "http://www.facebook.com/silexlabs",
	HelpForkMe:            "https://github.com/silexlabs/Silex",
	HelpContribute:        "https://github.com/silexlabs/Silex/wiki/Contribute",
	HelpContributors:      "https://github.com/silexlabs/Silex/blob/develop/docs/contributors.md",
}

// HelpLinks merges per-identifier overrides into the default help links.
// Overrides whose identifier is not a help action are returned as ignored.
func HelpLinks(overrides map[string]string) (map[Kind]string, []string) {
	links := make(map[Kind]string, len(DefaultHelpLinks))
	for k, url := range DefaultHelpLinks {
		links[k] = url
	}

	var ignored []string
	for id, url := range overrides {
		k, ok := Parse(id)
		if !ok || !k.IsHelp() {
			ignored = append(ignored, id)
			continue
		}
		links[k] = url
	}
	return links, ignored
}
