package generator

import (
	"github.com/xaheen/xaheen/internal/template"
)

// BuiltinTemplates returns the templates that ship with the CLI. They are
// registered into the store in memory; a template file with the same id in
// the project's template directory takes precedence.
func BuiltinTemplates() []*template.Template {
	return []*template.Template{
		{
			ID:        "component",
			Name:      "React component",
			Variables: []string{"name", "framework"},
			Content: `// {{t "generated.header"}}
import React from 'react';

export interface {{pascalCase name}}Props {
  children?: React.ReactNode;
}

export const {{pascalCase name}} = ({ children }: {{pascalCase name}}Props) => {
  return (
    <div className="{{kebabCase name}}">
      {children}
    </div>
  );
};

export default {{pascalCase name}};
`,
		},
		{
			ID:        "component-test",
			Name:      "Component test",
			Variables: []string{"name"},
			Content: `import { render, screen } from '@testing-library/react';
import { {{pascalCase name}} } from './{{pascalCase name}}';

describe('{{pascalCase name}}', () => {
  it('renders children', () => {
    render(<{{pascalCase name}}>hello</{{pascalCase name}}>);
    expect(screen.getByText('hello')).toBeInTheDocument();
  });
});
`,
		},
		{
			ID:        "component-story",
			Name:      "Component story",
			Variables: []string{"name"},
			Content: `import type { Meta, StoryObj } from '@storybook/react';
import { {{pascalCase name}} } from './{{pascalCase name}}';

const meta: Meta<typeof {{pascalCase name}}> = {
  title: 'Components/{{pascalCase name}}',
  component: {{pascalCase name}},
};

export default meta;

export const Default: StoryObj<typeof {{pascalCase name}}> = {
  args: {},
};
`,
		},
		{
			ID:        "page",
			Name:      "Page",
			Variables: []string{"name", "framework"},
			Content: `// {{t "generated.header"}}
import React from 'react';

export default function {{pascalCase name}}Page() {
  return (
    <main>
      <h1>{{pascalCase name}}</h1>
    </main>
  );
}
`,
		},
		{
			ID:        "service",
			Name:      "Service class",
			Variables: []string{"name"},
			Content: `// {{t "generated.header"}}
export class {{pascalCase name}}Service {
  private readonly baseUrl: string;

  constructor(baseUrl = '/api/{{kebabCase name}}') {
    this.baseUrl = baseUrl;
  }

  async list(): Promise<unknown[]> {
    const res = await fetch(this.baseUrl);
    if (!res.ok) {
      throw new Error('{{constantCase name}}_LIST_FAILED');
    }
    return res.json();
  }
}
`,
		},
		{
			ID:   "doc-base",
			Name: "Compliance document base",
			Content: `# {{#block "title"}}{{t "compliance.title"}}{{/block}}

{{#block "meta"}}
- {{t "compliance.owner"}}: {{owner}}
- {{t "compliance.review"}}: {{isoDate reviewDate}}
{{/block}}

{{#block "body"}}{{/block}}
`,
			Blocks: []template.Block{
				{Name: "title", Description: "Document heading"},
				{Name: "meta", Description: "Ownership and review metadata"},
				{Name: "body", Description: "Document body"},
			},
		},
		{
			ID:     "compliance-ropa",
			Name:   "GDPR record of processing activities",
			Parent: "doc-base",
			Blocks: []template.Block{
				{Name: "title", Content: `{{t "compliance.ropa"}}: {{project}}`},
				{Name: "body", Content: `## Processing activities

{{#each activities}}
### {{this.name}}

- Purpose: {{this.purpose}}
- Legal basis: {{this.legalBasis}}
- Categories: {{join this.categories}}
{{/each}}
`},
			},
		},
		{
			ID:     "compliance-nsm",
			Name:   "NSM classification overview",
			Parent: "doc-base",
			Blocks: []template.Block{
				{Name: "title", Content: `NSM: {{project}}`},
				{Name: "body", Content: `## Classification

This system handles data classified as **{{classification}}**.

## Controls

{{#each controls}}
- {{this}}
{{/each}}
`},
			},
		},
	}
}
