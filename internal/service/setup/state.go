package setup

// EnvFile holds the settings collected by the wizard. Field tags mirror the
// config structs so pkg/env can render the .env file from them. Boolean flags
// are kept as strings so "false" still gets written out.
type EnvFile struct {
	APIURL          string `env:"MIND_API_URL"`
	APIToken        string `env:"MIND_API_TOKEN"`
	EnableCLI       string `env:"ENABLE_CLI"`
	EnableTelegram  string `env:"ENABLE_TELEGRAM"`
	TelegramToken   string `env:"TELEGRAM_TOKEN"`
	TelegramOwnerID string `env:"TELEGRAM_OWNER_ID"`
}

type State struct {
	Env EnvFile
}

func NewState() *State {
	return &State{}
}

func (s *State) TelegramSelected() bool {
	return s.Env.EnableTelegram == "true"
}
