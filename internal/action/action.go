// Package action defines the commands the key handlers can request from
// the application loop.
package action

// Action is a request produced by key handling and consumed by the
// application loop.
type Action interface {
	Type() string
}

// Quit exits the application
type Quit struct{}

func (a Quit) Type() string { return "quit" }

// RunUpdate updates the given packages, or everything when empty
type RunUpdate struct {
	Packages []string
}

func (a RunUpdate) Type() string { return "run_update" }

// RunRebuild runs a rebuild shell command from the checks config
type RunRebuild struct {
	Command string
}

func (a RunRebuild) Type() string { return "run_rebuild" }

// Uninstall removes packages
type Uninstall struct {
	Packages []string
}

func (a Uninstall) Type() string { return "uninstall" }

// UninstallWithDeps removes packages with their unneeded dependencies
// and config files
type UninstallWithDeps struct {
	Packages []string
}

func (a UninstallWithDeps) Type() string { return "uninstall_deps" }

// Reinstall redownloads and reinstalls packages
type Reinstall struct {
	Packages []string
}

func (a Reinstall) Type() string { return "reinstall" }

// ForceRebuild rebuilds packages from source
type ForceRebuild struct {
	Packages []string
}

func (a ForceRebuild) Type() string { return "force_rebuild" }

// Install installs packages from the search results
type Install struct {
	Packages []string
}

func (a Install) Type() string { return "install" }

// ExportBackup writes the installed package lists to dated backup files
type ExportBackup struct{}

func (a ExportBackup) Type() string { return "export_backup" }

// CopyPackageList puts the installed package listing on the clipboard
type CopyPackageList struct{}

func (a CopyPackageList) Type() string { return "copy_package_list" }

// OpenArticle opens the selected news article in the pager
type OpenArticle struct{}

func (a OpenArticle) Type() string { return "open_article" }
