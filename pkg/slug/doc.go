// Package slug turns arbitrary text into a filesystem and URL safe token.
//
// ASCII letters and digits pass through, common Latin diacritics fold to
// their ASCII base letter, and every other run of characters becomes a
// single separator:
//
//	slug.Make("Contact Form: Café & Co.")           // "contact-form-cafe-co"
//	slug.Make("Contact Form", slug.Separator("_"))  // "contact_form"
//	slug.Make("a very long title", slug.MaxLength(6)) // "a-very"
package slug
