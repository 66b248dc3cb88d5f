package dto

type ExportFailure struct {
	Filename    string
	StoragePath string
	Err         error
}

type ExportSummary struct {
	Location     string
	MetadataFile string
	Total        int
	Downloaded   int
	Failed       int
	Failures     []ExportFailure
}
