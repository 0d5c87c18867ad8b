// Package entry implements the entry-point logic shared by the backend services
// that exchange signed requests, including opinionated defaults for logging and
// tracing.
//
// Example usage:
//
//	func main() {
//		app := entry.NewApplication("showtime")
//		defer app.Stop()
//
//		verifier := httpsig.NewVerifier(os.Getenv("SIGNING_SECRET"))
//
//		h := &somethingThatImplementsHttpHandler{}
//
//		entry.RunServer(app, httpsig.RequireSignature(verifier)(h), "", 5000)
//	}
package entry
