// Package environment names the deployment environments the service runs
// in and carries the current one through request contexts and logs.
//
//	env := environment.Parse(os.Getenv("APP_ENV")) // "prod" → Production
//	mux = environment.Middleware(env)(mux)
package environment
