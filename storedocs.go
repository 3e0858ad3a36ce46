package main

import (
	"bytes"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/alexedwards/scs/v2"
	_ "github.com/mattn/go-sqlite3"
	"github.com/storedocs/storedocs/backend"
	"github.com/storedocs/storedocs/core"
	"github.com/storedocs/storedocs/mail"
	"github.com/storedocs/storedocs/sqldb"
	"github.com/storedocs/storedocs/sqldb/mysql"
	"github.com/storedocs/storedocs/sqldb/sqlite3"
	"github.com/xo/dburl"
	"golang.org/x/crypto/ssh/terminal"
)

type prefixedResponseWriter struct {
	http.ResponseWriter
	prefix string // without trailing slash
}

// shadows the original WriteHeader func
func (w prefixedResponseWriter) WriteHeader(statusCode int) {
	// prepend prefix to Location header, so redirects work
	if w.prefix != "" {
		if location := w.Header().Get("Location"); len(location) > 0 && location[0] == '/' { // only absolute locations
			w.Header().Set("Location", w.prefix+location)
		}
	}
	w.ResponseWriter.WriteHeader(statusCode)
}

// prefix should be without trailing slash
func handleStrip(prefix string, handler http.Handler) {
	http.Handle(
		prefix+"/", // http mux needs trailing slash
		http.StripPrefix(
			prefix,
			http.HandlerFunc(
				func(w http.ResponseWriter, r *http.Request) {
					w = &prefixedResponseWriter{w, prefix}
					handler.ServeHTTP(w, r)
				},
			),
		),
	)
}

func init() {
	log.SetFlags(0) // no log prefixes, on most systems systemd-journald adds them
}

const defaultDB = "sqlite3:storedocs.sqlite3?_busy_timeout=10000&_journal=WAL&_sync=NORMAL&cache=shared"

func main() {

	var dbArg string // is in both FlagSets

	// default FlagSet

	// Your reverse proxy must not strip the prefix. So if you're using nginx, the "proxy_pass" value should not end with a slash.
	var base = flag.String("base", "", "strip off this `prefix` from every HTTP request and prepended it to every link")
	// MySQL: collation should be utf8mb4_unicode_ci
	flag.StringVar(&dbArg, "db", defaultDB, "sql database url, see github.com/xo/dburl")
	var listenAddr = flag.String("listen", "127.0.0.1:8080", "serve HTTP content at this `ip:port`")

	// init FlagSet

	var initFlags = flag.NewFlagSet("init", flag.ExitOnError)

	initFlags.StringVar(&dbArg, "db", defaultDB, "sql database url, see github.com/xo/dburl") // copied from above
	var initInsert = initFlags.Bool("insert", false, "creates the given user")
	var initSeed = initFlags.Bool("seed", false, "inserts example documents and calendar events")
	var username = initFlags.String("user", "", "specifies a user `name`")
	var rolename = initFlags.String("role", "", "specifies a user `role`: corporate, corporate-plus, store-staff or supervisor")

	if len(os.Args) > 1 && os.Args[1] == "init" {
		initFlags.Parse(os.Args[2:])
	} else {
		flag.Parse()
	}

	// database

	dbURL, err := dburl.Parse(dbArg)
	if err != nil {
		log.Printf("could not parse database url: %v", err)
		return
	}

	sqlDB, err := sql.Open(dbURL.Driver, dbURL.DSN)
	if err != nil {
		log.Printf("could not open sql database: %v", err)
		return
	}

	if err = sqlDB.Ping(); err != nil {
		log.Printf("could not ping sql database: %v", err)
		return
	}

	log.Printf("using database %s", dbURL.String())

	// base

	*base = strings.Trim(*base, "/")
	if *base != "" {
		*base = "/" + *base
	}

	// assemble stuff

	var sessionStore scs.Store
	switch dbURL.Driver {
	case "mysql":
		sessionStore = mysql.NewSessionStore(sqlDB)
	case "sqlite3":
		sessionStore = sqlite3.NewSessionStore(sqlDB)
	default:
		log.Printf("unknown database backend: %s", dbURL.Driver)
		return
	}

	db := &core.CoreDB{}
	err = db.Init(sessionStore, *base)
	if err != nil {
		log.Println(err) // log.Fatalln would not run deferred functions
		return
	}

	db.CalendarDB = sqldb.NewCalendarDB(sqlDB)
	db.DocumentDB = sqldb.NewDocumentDB(sqlDB)
	db.EvidenceDB = sqldb.NewEvidenceDB(sqlDB)
	db.FavoriteDB = sqldb.NewFavoriteDB(sqlDB)
	db.UserDB = sqldb.NewUserDB(sqlDB)
	db.Mailer = mail.NewMailer()

	db.SqlDB = sqlDB

	defer func() {
		log.Println("closing database")
		sqlDB.Close()
	}()

	// init

	if initFlags.Parsed() {
		switch {
		case *initInsert:
			if *username != "" {
				insertUser(db, *username, core.Role(*rolename))
			}
		case *initSeed:
			seed(db)
		}
		return
	}

	listen(db, *listenAddr, *base)
}

func insertUser(db *core.CoreDB, name string, role core.Role) {

	if !role.Valid() {
		log.Printf("unknown role %q", role)
		return
	}

	fmt.Printf("password for user %s: ", name)
	pass1, err := terminal.ReadPassword(0)
	fmt.Println()
	if err != nil {
		log.Printf("error reading password: %v", err)
		return
	}

	fmt.Printf("repeat password: ")
	pass2, err := terminal.ReadPassword(0)
	fmt.Println()
	if err != nil {
		log.Printf("error reading password: %v", err)
		return
	}

	if !bytes.Equal(pass1, pass2) {
		log.Printf("passwords don't match")
		return
	}

	if err := db.InsertUser(name, role); err != nil {
		log.Printf("error creating user %s: %v", name, err)
		return
	}

	// a fresh user has no password yet, look it up by listing
	all, err := db.GetAllUsers(100000, 0)
	if err != nil {
		log.Printf("error listing users: %v", err)
		return
	}
	for _, u := range all {
		if u.Name() == strings.ToLower(strings.TrimSpace(name)) {
			if err := db.SetPassword(u, string(pass1)); err != nil {
				log.Printf("error setting password: %v", err)
			}
			return
		}
	}
	log.Printf("created user %s not found", name)
}

func listen(db *core.CoreDB, addr string, base string) {

	var waitingControllers sync.WaitGroup

	handleStrip(base+"/assets", http.FileServer(http.Dir("assets")))
	handleStrip(base+"/static", http.FileServer(http.Dir("static")))
	handleStrip(base+"/upload", authorized(db, db.Uploads))

	var appRouter = backend.NewAppRouter(db, base)

	handleStrip(
		base,
		http.HandlerFunc(
			func(w http.ResponseWriter, req *http.Request) {
				waitingControllers.Add(1)
				defer waitingControllers.Done()
				appRouter.ServeHTTP(w, req)
			},
		),
	)

	// listener and listen

	sigintChannel := make(chan os.Signal, 1)

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		log.Println(err)
		return
	}

	log.Printf("listening to %s", addr)

	httpSrv := &http.Server{
		Handler:      db.SessionManager.LoadAndSave(http.DefaultServeMux),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		if err := httpSrv.Serve(listener); err != nil {

			// don't panic, we want a graceful shutdown
			if err != http.ErrServerClosed {
				log.Printf("error listening: %v", err)
			}

			// ensure graceful shutdown
			sigintChannel <- os.Interrupt
		}
	}()

	// graceful shutdown

	signal.Notify(sigintChannel, os.Interrupt, syscall.SIGTERM) // SIGINT (Interrupt) or SIGTERM
	<-sigintChannel

	log.Println("shutting down")
	httpSrv.Close()

	waitingControllers.Wait()
}

// authorized gates the upload file server behind a login.
func authorized(db *core.CoreDB, handler http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		var request = db.NewRequest(w, req)
		if !request.LoggedIn() {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		handler.ServeHTTP(w, req)
	})
}
