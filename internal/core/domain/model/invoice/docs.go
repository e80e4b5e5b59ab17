// Package invoice contains the Invoice aggregate. Invoices bill a customer
// for a single load, default their bill-to and currency from the load, and
// carry a guard-free DRAFT/SENT/PAID/VOID status.
package invoice
