package cli

import (
	"github.com/IvanChernomyrdin/go-userhub/internal/agent/api"
)

// для тестов
var (
	NewAPIClient = api.NewClient
)
