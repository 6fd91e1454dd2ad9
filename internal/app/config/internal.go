package config

type InternalConfig struct {
	App     App
	Planner Planner
}

type App struct {
	Env                        string
	Port                       string
	Version                    string
	Address                    string
	EndpointPrefix             string
	AllowedOrigins             []string
	MaxRequests                int
	ShutdownTimeout            int
	RequestBodyLimitInMegabyte int
}

// Planner holds the file names and backends shared by the CLI and the
// HTTP listener.
type Planner struct {
	CommittedFile     string
	CandidatesFile    string
	DownloadsDir      string
	ListingInputFile  string
	ListingOutputFile string
	TimetableImage    string
	StoreDriver       string
	StoreKey          string
	NotifyQueue       string
}
