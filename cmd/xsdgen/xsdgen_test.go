package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CognitoIQ/go-xsd/internal/testutil"
	"github.com/CognitoIQ/go-xsd/xsd"
)

const header = `<schema xmlns="http://www.w3.org/2001/XMLSchema"
	xmlns:tns="urn:shop" targetNamespace="urn:shop">`

func TestExitCodes(t *testing.T) {
	dir := testutil.WriteFiles(t, map[string]string{
		"ok.xsd": header + `
			<complexType name="Item">
			  <sequence><element name="sku" type="string"/></sequence>
			</complexType>
		</schema>`,
		"unresolved.xsd": header + `
			<element name="order" type="tns:Missing"/>
		</schema>`,
		"syntax.xsd": header + `<complexType name="Item">`,
		"unsupported.xsd": header + `
			<notation name="gif" public="image/gif"/>
		</schema>`,
	})
	tests := []struct {
		args []string
		code int
	}{
		{[]string{"ok.xsd"}, exitOK},
		{[]string{"-t", "go", "ok.xsd"}, exitOK},
		{[]string{"unresolved.xsd"}, exitMalformed},
		{[]string{"syntax.xsd"}, exitMalformed},
		{[]string{"unsupported.xsd"}, exitUnsupported},
		{[]string{"--lenient", "unsupported.xsd"}, exitOK},
		{[]string{"missing.xsd"}, exitIO},
	}
	for _, tt := range tests {
		var args []string
		for _, arg := range tt.args {
			if filepath.Ext(arg) == ".xsd" {
				arg = filepath.Join(dir, arg)
			}
			args = append(args, arg)
		}
		var out bytes.Buffer
		assert.Equal(t, tt.code, run(args, &out), "%v", tt.args)
	}
}

func TestOutputFile(t *testing.T) {
	dir := testutil.WriteFiles(t, map[string]string{
		"shop.xsd": header + `
			<simpleType name="Sku"><restriction base="string"/></simpleType>
		</schema>`,
	})
	output := filepath.Join(dir, "shop.rs")
	var out bytes.Buffer
	require.Equal(t, exitOK, run([]string{"-o", output, filepath.Join(dir, "shop.xsd")}, &out))
	assert.Empty(t, out.String())

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(data), "pub struct Sku(pub String);")
}

func TestExitCodeWrapped(t *testing.T) {
	err := errors.Join(errors.New("shop.xsd"), &xsd.CyclicSubtypeError{Name: "Item"})
	assert.Equal(t, exitMalformed, exitCode(err))
	assert.Equal(t, exitUnsupported, exitCode(&xsd.UnsupportedConstructError{Kind: "redefine"}))
	assert.Equal(t, exitIO, exitCode(os.ErrPermission))
	assert.Equal(t, exitOK, exitCode(nil))
}
