// Command httpd serves the www directory for testing the wasm build locally.
package main

import (
	"log"
	"net/http"
	"strings"
)

const address = "localhost:8088"

type handler struct {
	files http.Handler
}

func (hnd handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log.Printf("%s %s", r.Method, r.RequestURI)
	if strings.HasSuffix(r.URL.Path, ".wasm") {
		w.Header().Set("Content-Type", "application/wasm")
	}
	hnd.files.ServeHTTP(w, r)
}

func main() {
	log.Printf("serving www on %s", address)
	err := http.ListenAndServe(address, handler{files: http.FileServer(http.Dir("www"))})
	if err != nil {
		log.Fatalln(err)
	}
}
