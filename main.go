package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/moonfeed/moonfeed/database"
	"github.com/moonfeed/moonfeed/helpers"
	"github.com/moonfeed/moonfeed/router"
	"github.com/moonfeed/moonfeed/schema"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// Get key-value in .env file
	godotenv.Load()

	db := database.New()
	events := helpers.InitNATS()

	core, err := schema.New(db, events)
	if err != nil {
		log.Fatalln("Unable to build schema:", err)
	}

	api := router.New(db, core)

	// Create routes
	mux := http.NewServeMux()
	mux.HandleFunc("/", router.Index)
	mux.HandleFunc("/users/", api.UserHandler)
	mux.HandleFunc("/posts/", api.PostHandler)
	mux.HandleFunc("/profiles/", api.ProfileHandler)
	mux.HandleFunc("/member-types/", api.MemberTypeHandler)
	mux.HandleFunc("/graphql", api.GraphQLHandler)
	mux.Handle("/metrics", promhttp.HandlerFor(helpers.GetRegistry(), promhttp.HandlerOpts{}))

	var handler http.Handler = mux
	if os.Getenv("ZIPKIN_ADDRESS") != "" {
		handler = helpers.InitTracer()(mux)
	}

	log.Println("Server is starting on port", os.Getenv("PORT"))

	// Create web server
	server := &http.Server{
		Addr:              ":" + os.Getenv("PORT"),
		Handler:           handler,
		ReadHeaderTimeout: 3 * time.Second,
	}

	if err := server.ListenAndServe(); err != nil {
		panic(err)
	}
}
