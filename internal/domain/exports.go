package domain

import (
	interfaces "passkeep/internal/domain/interfaces"
	types "passkeep/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	Credential = types.Credential
	Entry      = types.Entry
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	StorageBackend = interfaces.StorageBackend
)
