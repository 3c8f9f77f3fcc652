// Package test holds fixtures shared by the command tests and the
// end-to-end suite.
package test

import (
	"os"
	"path/filepath"
)

// TemplatePO is a small module template: a plain entry, a contextual
// entry and a plural entry, none translated.
const TemplatePO = `msgid ""
msgstr ""
"Project-Id-Version: mail 1.0\n"
"Content-Type: text/plain; charset=UTF-8\n"

#: code:addons/mail/models/mail_thread.py:42
msgid "Send a message"
msgstr ""

msgctxt "email header"
msgid "Subject"
msgstr ""

msgid "One attachment"
msgid_plural "%d attachments"
msgstr[0] ""
msgstr[1] ""
`

// FrenchPO translates part of TemplatePO and still carries an entry the
// template no longer has.
const FrenchPO = `msgid ""
msgstr ""
"Project-Id-Version: mail 1.0\n"
"Content-Type: text/plain; charset=UTF-8\n"
"Language: fr\n"
"Plural-Forms: nplurals=2; plural=(n > 1);\n"

msgid "Send a message"
msgstr "Envoyer un message"

msgctxt "email header"
msgid "Subject"
msgstr ""

msgid "One attachment"
msgid_plural "%d attachments"
msgstr[0] "Une pièce jointe"
msgstr[1] "%d pièces jointes"

msgid "A removed term"
msgstr "Un terme supprimé"
`

// WriteModule lays out one module directory with its manifest and,
// when pot is non-empty, its template catalog. It returns the module
// directory.
func WriteModule(root, name, pot string) (string, error) {
	dir := filepath.Join(root, name)
	if err := os.MkdirAll(filepath.Join(dir, "i18n"), 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(filepath.Join(dir, "__manifest__.py"), []byte("{}\n"), 0o644); err != nil {
		return "", err
	}
	if pot != "" {
		path := filepath.Join(dir, "i18n", name+".pot")
		if err := os.WriteFile(path, []byte(pot), 0o644); err != nil {
			return "", err
		}
	}
	return dir, nil
}
