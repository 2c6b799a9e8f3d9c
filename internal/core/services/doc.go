// Package services contains the core application logic.
//
// Services implement the driving ports and depend only on driven ports,
// keeping them free of adapter concerns. RAGService is the answering
// pipeline; IngestService turns files into searchable indexes.
package services
