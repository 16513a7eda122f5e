package httpapi

import "net/http"

// NewMux wires every portal route behind the standard middleware stack.
func NewMux(d *Deps) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: d.HealthHandler,
	}))
	mux.HandleFunc("/health/backend", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: d.BackendHealthHandler,
	}))

	mux.HandleFunc("/session", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: d.SessionHandler,
	}))
	mux.HandleFunc("/login", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: d.LoginHandler,
	}))
	mux.HandleFunc("/signup", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: d.SignupHandler,
	}))
	mux.HandleFunc("/logout", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: d.LogoutHandler,
	}))

	mux.HandleFunc("/jobs", methodMux(map[string]http.HandlerFunc{
		http.MethodGet:  d.ListJobsHandler,
		http.MethodPost: d.CreateJobHandler,
	}))
	mux.HandleFunc("/jobs/mine", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: d.MyJobsHandler,
	}))
	mux.HandleFunc("/jobs/", methodMux(map[string]http.HandlerFunc{
		http.MethodDelete: d.DeleteJobHandler,
	}))
	mux.HandleFunc("/overview", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: d.OverviewHandler,
	}))

	mux.HandleFunc("/links", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: d.LinksHandler,
	}))
	mux.HandleFunc("/config", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: d.GetConfigHandler,
		http.MethodPut: d.PutConfigHandler,
	}))

	mux.HandleFunc("/events", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: d.EventsHandler,
	}))
	mux.HandleFunc("/shutdown", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: d.ShutdownHandler,
	}))

	return Chain(mux, RequestID, AccessLog, Recover, Cors)
}
