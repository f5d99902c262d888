package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"

	"zadaci-service/handlers"
	"zadaci-service/logging"
	"zadaci-service/middleware"
	"zadaci-service/models"
	"zadaci-service/services"
	"zadaci-service/store"
)

func newRouter(loginHandler *handlers.LoginHandler, ownerHandler *handlers.OwnerHandler, workerHandler *handlers.WorkerHandler) *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/", loginHandler.Login).Methods(http.MethodGet, http.MethodPost)
	r.HandleFunc("/login", loginHandler.Login).Methods(http.MethodGet, http.MethodPost)
	r.HandleFunc("/logout", loginHandler.Logout).Methods(http.MethodGet)

	r.HandleFunc("/vlasnik", middleware.RequireRole(models.RoleOwner, ownerHandler.Dashboard)).Methods(http.MethodGet, http.MethodPost)
	r.HandleFunc("/vlasnik/radnici", middleware.RequireRole(models.RoleOwner, ownerHandler.ManageWorkers)).Methods(http.MethodGet, http.MethodPost)
	r.HandleFunc("/vlasnik/radnik/{korisnik}", middleware.RequireRole(models.RoleOwner, ownerHandler.WorkerDetail)).Methods(http.MethodGet, http.MethodPost)

	r.HandleFunc("/radnik", middleware.RequireRole(models.RoleWorker, workerHandler.Dashboard)).Methods(http.MethodGet)
	r.HandleFunc("/radnik/zadatak/{indeks:[0-9]+}", middleware.RequireRole(models.RoleWorker, workerHandler.TaskDetail)).Methods(http.MethodGet, http.MethodPost)

	return r
}

func main() {
	logging.InitLogger()
	logging.Logger.Info("Event ID: SERVICE_START, Description: Starting zadaci service...")

	if err := godotenv.Load(".env"); err != nil {
		logging.Logger.Warnf("Event ID: ENV_LOAD_WARNING, Description: No .env file loaded: %v", err)
	}

	dataFile := os.Getenv("DATA_FILE")
	if dataFile == "" {
		dataFile = "podaci.json"
	}
	fileStore := store.NewFileStore(dataFile)
	logging.Logger.Infof("Event ID: STORE_CONFIGURED, Description: Using document file: %s", dataFile)

	userService := services.NewUserService(fileStore)
	taskService := services.NewTaskService(fileStore)

	loginHandler := &handlers.LoginHandler{UserService: userService}
	ownerHandler := handlers.NewOwnerHandler(userService, taskService)
	workerHandler := handlers.NewWorkerHandler(userService, taskService)

	router := newRouter(loginHandler, ownerHandler, workerHandler)

	serverPort := os.Getenv("SERVER_PORT")
	if serverPort == "" {
		logging.Logger.Fatalf("Event ID: CONFIG_ERROR, Description: SERVER_PORT is not set in the environment variables.")
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", serverPort),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	logging.Logger.Infof("Event ID: SERVER_START_INFO, Description: Server running on http://localhost%s", srv.Addr)

	if err := srv.ListenAndServe(); err != nil {
		logging.Logger.Fatalf("Event ID: SERVER_FATAL_ERROR, Description: Server failed to start: %v", err)
	}
}
