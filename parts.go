package mdexport

import "time"

// MIMETypeDocx is the media type of the exported OOXML container.
const MIMETypeDocx = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

const xmlProlog = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n"

const contentTypesXML = xmlProlog +
	`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">` +
	`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>` +
	`<Default Extension="xml" ContentType="application/xml"/>` +
	`<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>` +
	`<Override PartName="/docProps/core.xml" ContentType="application/vnd.openxmlformats-package.core-properties+xml"/>` +
	`<Override PartName="/docProps/app.xml" ContentType="application/vnd.openxmlformats-officedocument.extended-properties+xml"/>` +
	`</Types>`

const rootRelsXML = xmlProlog +
	`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>` +
	`<Relationship Id="rId2" Type="http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties" Target="docProps/core.xml"/>` +
	`<Relationship Id="rId3" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/extended-properties" Target="docProps/app.xml"/>` +
	`</Relationships>`

const documentRelsXML = xmlProlog +
	`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"/>`

// sectPrXML is the fixed page descriptor: A4 with one-inch margins.
const sectPrXML = `<w:sectPr><w:pgSz w:w="11906" w:h="16838"/>` +
	`<w:pgMar w:top="1440" w:right="1440" w:bottom="1440" w:left="1440" w:header="708" w:footer="708" w:gutter="0"/>` +
	`</w:sectPr>`

func documentXML(body string) string {
	return xmlProlog +
		`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">` +
		`<w:body>` + body + sectPrXML + `</w:body></w:document>`
}

func corePropsXML(title, creator string, created time.Time) string {
	ts := created.UTC().Format(time.RFC3339)
	t := xmlEscape(title)
	c := xmlEscape(creator)
	return xmlProlog +
		`<cp:coreProperties xmlns:cp="http://schemas.openxmlformats.org/package/2006/metadata/core-properties"` +
		` xmlns:dc="http://purl.org/dc/elements/1.1/" xmlns:dcterms="http://purl.org/dc/terms/"` +
		` xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance">` +
		`<dc:title>` + t + `</dc:title>` +
		`<dc:creator>` + c + `</dc:creator>` +
		`<cp:lastModifiedBy>` + c + `</cp:lastModifiedBy>` +
		`<dcterms:created xsi:type="dcterms:W3CDTF">` + ts + `</dcterms:created>` +
		`<dcterms:modified xsi:type="dcterms:W3CDTF">` + ts + `</dcterms:modified>` +
		`</cp:coreProperties>`
}

func appPropsXML(application string) string {
	return xmlProlog +
		`<Properties xmlns="http://schemas.openxmlformats.org/officeDocument/2006/extended-properties">` +
		`<Application>` + xmlEscape(application) + `</Application>` +
		`</Properties>`
}

// packageParts assembles the six fixed parts in container order.
func packageParts(title, body string, created time.Time, cfg exportConfig) []ArchiveEntry {
	return []ArchiveEntry{
		{Name: "[Content_Types].xml", Data: []byte(contentTypesXML)},
		{Name: "_rels/.rels", Data: []byte(rootRelsXML)},
		{Name: "docProps/core.xml", Data: []byte(corePropsXML(title, cfg.creator, created))},
		{Name: "docProps/app.xml", Data: []byte(appPropsXML(cfg.application))},
		{Name: "word/document.xml", Data: []byte(documentXML(body))},
		{Name: "word/_rels/document.xml.rels", Data: []byte(documentRelsXML)},
	}
}
