// Package entrez is a client for the NCBI Entrez E-utilities, scoped to
// PubMed. It implements the driven.LiteratureSearcher port with the two
// E-utility calls a search needs: esearch for identifiers and efetch for
// MEDLINE-formatted records.
//
// NCBI requires a contact email on every request and throttles clients to
// 3 requests per second without an API key (10 with one). The client
// enforces that rate locally so well-behaved hosts never see a 429.
package entrez
