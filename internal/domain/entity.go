package domain

type EntityID string

type FolderID string

// Entity is a host-owned character record. termdeck reads entities through
// the data store port and never mutates them.
type Entity struct {
	ID       EntityID
	Name     string
	FolderID FolderID
}

type Folder struct {
	ID   FolderID
	Name string
	Type string
}

// Flag keys the host stores on entities for identity display.
const (
	FlagFirstName  = "firstName"
	FlagSurname    = "surname"
	FlagMiddleName = "middleName"
)

// FlagInterfaceActive is the per-user flag gating the overlay and its
// refresh timer.
const FlagInterfaceActive = "interfaceActive"
