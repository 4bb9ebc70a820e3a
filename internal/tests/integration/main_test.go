package integration

import (
	"net/http/httptest"
	"testing"
	"time"
	userapp "user-collection-service/internal/application/user"
	input "user-collection-service/internal/domain/ports/input"
	"user-collection-service/internal/infrastructure/config"
	apihttp "user-collection-service/internal/infrastructure/http" // renamed to avoid clashing with net/http
	"user-collection-service/internal/infrastructure/logger"
	"user-collection-service/internal/infrastructure/persistence/memory"
	mem_uow "user-collection-service/internal/infrastructure/persistence/memory/uow"
)

// buildService returns a service over a freshly seeded collection.
func buildService(t *testing.T) input.UserInputPort {
	t.Helper()
	log := logger.New("test")
	return userapp.NewService(mem_uow.NewMemoryUOW(memory.NewSeededStore(), log), log)
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	log := logger.New("test")
	r := apihttp.NewRouter(log, buildService(t))
	r.Setup(&config.Config{HTTPServer: config.HTTPServer{RequestTimeout: 5 * time.Second}})
	server := httptest.NewServer(r.GetRouter())
	t.Cleanup(server.Close)
	return server
}
