// Package domain contains the job board's core entities: users, companies,
// job postings, resumes and the applications linking resumes to jobs. The
// types here carry no persistence or transport concerns.
package domain
