package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	CopyFileError
	ReadFileError

	// Logging errors
	CreateLogFileError

	// Load errors
	LoadFileNotFoundError
	LoadFileOpenError
	LoadSheetNotFoundError
	LoadEmptySheetError

	// Transform errors
	TransformInputError
	TransformCanceledError

	// Write errors
	WriteDirError
	WriteFileError
	WriteRenameError

	// Archive errors
	ArchiveCreateError
	ArchiveSchemaError
	ArchiveInsertError
	ArchiveMetadataError

	// Check errors
	CheckEmptyError
	CheckParserError
	CheckReportError
)
